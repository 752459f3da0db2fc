// Package dedup collapses near-duplicate FASTA records.
//
// A pass parses the lines into records, sketches each sequence, buckets the
// records by shared minimizers, verifies candidate pairs with a banded
// alignment, joins matches with union-find, and keeps one representative per
// class: the longest sequence, ties going to the earliest record. Survivors
// are emitted as their original lines, in input order.
//
// Records that never share a minimizer are never compared, so a true
// near-duplicate can survive when its sketch misses. Records shorter than
// K+SketchSize are exempt: they are compared with every record whose length
// is within the band. Options.AllPairs trades the remaining risk for
// quadratic work.
package dedup

import (
	"context"
	"strings"

	"fadedup/internal/align"
	"fadedup/internal/bucket"
	"fadedup/internal/cluster"
	"fadedup/internal/pipeline"
	"fadedup/internal/record"
	"fadedup/internal/runutil"
	"fadedup/internal/sketch"
)

const (
	DefaultThreshold = 90.0
	// DefaultWindow is the band half-width used when the caller has no
	// preference.
	DefaultWindow = 5
)

// Options controls one dedup pass.
type Options struct {
	Threshold float64 // percent identity in (0, 100]
	Window    int     // band half-width, >= 0

	K          int // k-mer length
	SketchSize int // minimizers kept per record
	Threads    int // 0 = all CPUs
	BucketCap  int // skip buckets larger than this (0 = unlimited)
	MinLength  int // drop records shorter than this (0 = keep all)

	BothStrands bool // treat reverse complements as duplicates
	AllPairs    bool // verify every pair instead of bucket candidates
	TrimN       bool // ignore leading and trailing N runs when comparing

	// Progress, if set, receives verification progress from one goroutine.
	Progress func(done, total int)
}

// DefaultOptions returns the options Dedup uses.
func DefaultOptions() Options {
	return Options{
		Threshold:  DefaultThreshold,
		Window:     DefaultWindow,
		K:          sketch.DefaultK,
		SketchSize: sketch.DefaultSize,
		Threads:    1,
	}
}

// Validate checks every parameter before any input is touched.
func (o Options) Validate() error {
	switch {
	case !(o.Threshold > 0 && o.Threshold <= 100):
		return &InvalidParameterError{Name: "threshold", Value: o.Threshold, Want: "in (0, 100]"}
	case o.Window < 0:
		return &InvalidParameterError{Name: "window", Value: o.Window, Want: ">= 0"}
	case o.K < 1:
		return &InvalidParameterError{Name: "k", Value: o.K, Want: ">= 1"}
	case o.SketchSize < 1:
		return &InvalidParameterError{Name: "sketch size", Value: o.SketchSize, Want: ">= 1"}
	case o.Threads < 0:
		return &InvalidParameterError{Name: "threads", Value: o.Threads, Want: ">= 0"}
	case o.BucketCap < 0:
		return &InvalidParameterError{Name: "bucket cap", Value: o.BucketCap, Want: ">= 0"}
	case o.MinLength < 0:
		return &InvalidParameterError{Name: "min length", Value: o.MinLength, Want: ">= 0"}
	}
	return nil
}

// Stats describes the work done by one pass.
type Stats struct {
	Records        int // parsed records
	Dropped        int // records shorter than MinLength
	Trimmed        int // records whose sequence lost N runs
	Buckets        int
	SkippedBuckets int
	Candidates     int // distinct candidate pairs
	Verified       int // pairs actually aligned
	Matched        int
	Clusters       int
	Survivors      int
}

// Result holds the surviving lines and pass statistics.
type Result struct {
	Lines []string
	Stats Stats
}

// Dedup removes near-duplicates from lines at the given identity threshold
// and band window, using default sketch parameters.
func Dedup(lines []string, threshold float64, window int) ([]string, error) {
	o := DefaultOptions()
	o.Threshold = threshold
	o.Window = window
	res, err := Run(context.Background(), lines, o)
	if err != nil {
		return nil, err
	}
	return res.Lines, nil
}

// Run performs one dedup pass. Parameter errors are reported before parsing;
// parse errors are returned unchanged.
func Run(ctx context.Context, lines []string, o Options) (Result, error) {
	if err := o.Validate(); err != nil {
		return Result{}, err
	}
	all, err := record.Parse(lines)
	if err != nil {
		return Result{}, err
	}

	var st Stats
	st.Records = len(all)
	if o.TrimN {
		for i := range all {
			if t := strings.Trim(all[i].Sequence, "N"); len(t) != len(all[i].Sequence) {
				all[i].Sequence = t
				st.Trimmed++
			}
		}
	}
	recs := all
	if o.MinLength > 0 {
		recs = make([]record.Record, 0, len(all))
		for _, r := range all {
			if r.Len() >= o.MinLength {
				recs = append(recs, r)
			}
		}
		st.Dropped = len(all) - len(recs)
	}

	seqs := make([]string, len(recs))
	lengths := make([]int, len(recs))
	for i, r := range recs {
		seqs[i] = r.Sequence
		lengths[i] = r.Len()
	}

	threads := runutil.EffectiveThreads(o.Threads)
	var pairs []bucket.Pair
	if o.AllPairs {
		pairs = bucket.AllPairs(len(recs))
	} else {
		g := sketch.Generator{K: o.K, Size: o.SketchSize, BothStrands: o.BothStrands}
		sks, err := pipeline.Sketches(ctx, threads, seqs, g)
		if err != nil {
			return Result{}, err
		}
		idx := bucket.Build(sks, o.BucketCap)
		pairs = bucket.Merge(idx.Pairs(), bucket.LengthPairs(lengths, o.K+o.SketchSize, o.Window))
		st.Buckets = idx.Len()
		st.SkippedBuckets = idx.Skipped
	}
	st.Candidates = len(pairs)

	uf := cluster.New(len(recs))
	vst, err := pipeline.VerifyPairs(ctx,
		pipeline.Config{
			Threads:  threads,
			Skip:     func(p bucket.Pair) bool { return uf.Same(p.A, p.B) },
			Progress: o.Progress,
		},
		pairs, seqs,
		align.Verifier{Threshold: o.Threshold, Window: o.Window, BothStrands: o.BothStrands},
		func(p bucket.Pair) error {
			uf.Union(p.A, p.B)
			return nil
		},
	)
	if err != nil {
		return Result{}, err
	}
	st.Verified = vst.Verified
	st.Matched = vst.Matched

	reps := uf.Resolve(lengths)
	st.Clusters = uf.Classes()
	st.Survivors = len(reps)

	var out []string
	for _, i := range reps {
		out = append(out, recs[i].Lines...)
	}
	return Result{Lines: out, Stats: st}, nil
}
