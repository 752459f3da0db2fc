// Package report formats the before/after summary of a dedup run.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"fadedup/internal/dedup"
	"fadedup/internal/fasta"
)

// Summary is everything printed after a run.
type Summary struct {
	Before  fasta.Counts
	After   fasta.Counts
	Elapsed time.Duration
	Stats   dedup.Stats
}

// Write prints the summary as a short human-readable block.
func (s Summary) Write(w io.Writer) error {
	rows := []string{
		fmt.Sprintf("Deduped %s lines in %.3f secs", humanize.Comma(int64(s.Before.Lines)), s.Elapsed.Seconds()),
		fmt.Sprintf("  records:    %s -> %s (%s removed)",
			humanize.Comma(int64(s.Before.Headers)), humanize.Comma(int64(s.After.Headers)),
			humanize.Comma(int64(s.Before.Headers-s.After.Headers))),
		fmt.Sprintf("  lines:      %s -> %s", humanize.Comma(int64(s.Before.Lines)), humanize.Comma(int64(s.After.Lines))),
		fmt.Sprintf("  size:       %s -> %s", humanize.Bytes(uint64(s.Before.Bytes)), humanize.Bytes(uint64(s.After.Bytes))),
		fmt.Sprintf("  candidates: %s (verified %s, matched %s)",
			humanize.Comma(int64(s.Stats.Candidates)), humanize.Comma(int64(s.Stats.Verified)), humanize.Comma(int64(s.Stats.Matched))),
		fmt.Sprintf("  clusters:   %s", humanize.Comma(int64(s.Stats.Clusters))),
	}
	if s.Stats.Trimmed > 0 {
		rows = append(rows, fmt.Sprintf("  N-trimmed:  %s", humanize.Comma(int64(s.Stats.Trimmed))))
	}
	if s.Stats.Dropped > 0 {
		rows = append(rows, fmt.Sprintf("  too short:  %s", humanize.Comma(int64(s.Stats.Dropped))))
	}
	if s.Stats.SkippedBuckets > 0 {
		rows = append(rows, fmt.Sprintf("  oversized buckets skipped: %s", humanize.Comma(int64(s.Stats.SkippedBuckets))))
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}
