// Package record groups FASTA-style lines into header+sequence records.
package record

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrMalformedInput is matched by every *MalformedInputError via errors.Is.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError reports a structural problem with the input lines.
// Line is 1-based.
type MalformedInputError struct {
	Line   int
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input at line %d: %s", e.Line, e.Reason)
}

func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }

// Record is one parsed sequence entry.
type Record struct {
	ID       int      // position in input order
	Header   string   // header line, newline stripped
	Sequence string   // uppercased residues, no whitespace
	Lines    []string // original header and sequence lines, verbatim
}

// Len is the sequence length in residues.
func (r Record) Len() int { return len(r.Sequence) }

// Parse turns lines into records. Blank lines are skipped. It fails when
// sequence content appears before the first header, or when a header has no
// sequence content before the next header or end of input.
func Parse(lines []string) ([]Record, error) {
	var (
		recs    []Record
		cur     *Record
		curLine int
		seq     strings.Builder
	)

	flush := func() error {
		if cur == nil {
			return nil
		}
		if seq.Len() == 0 {
			return &MalformedInputError{Line: curLine, Reason: fmt.Sprintf("header %q has no sequence", cur.Header)}
		}
		cur.Sequence = seq.String()
		recs = append(recs, *cur)
		seq.Reset()
		cur = nil
		return nil
	}

	for i, raw := range lines {
		line := stripNewline(raw)
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			cur = &Record{ID: len(recs), Header: line, Lines: []string{raw}}
			curLine = i + 1
			continue
		}
		if cur == nil {
			return nil, &MalformedInputError{Line: i + 1, Reason: "sequence line before first header"}
		}
		appendResidues(&seq, line)
		cur.Lines = append(cur.Lines, raw)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return recs, nil
}

func stripNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

func appendResidues(b *strings.Builder, line string) {
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
}
