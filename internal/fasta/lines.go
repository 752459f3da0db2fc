// internal/fasta/lines.go
package fasta

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Counts summarises a line corpus.
type Counts struct {
	Lines   int
	Headers int
	Bytes   int64 // line bytes plus one newline each
}

// Count tallies lines, '>' headers and bytes.
func Count(lines []string) Counts {
	var c Counts
	for _, l := range lines {
		c.Lines++
		c.Bytes += int64(len(l)) + 1
		if len(l) > 0 && l[0] == '>' {
			c.Headers++
		}
	}
	return c
}

// ReadLines loads every line of path ("-" = stdin, gzip detected) without
// line terminators. Cancellation is checked between lines.
func ReadLines(ctx context.Context, path string) ([]string, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	lines, err := ScanLines(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// ScanLines reads all lines from r.
func ScanLines(ctx context.Context, r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var lines []string
	for sc.Scan() {
		if len(lines)%4096 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	return lines, nil
}
