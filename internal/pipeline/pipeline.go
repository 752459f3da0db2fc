// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"fadedup/internal/bucket"
	"fadedup/internal/sketch"
)

const defaultBatch = 1024

// Config controls the parallel stages.
type Config struct {
	Threads   int // number of worker goroutines (>=1)
	BatchSize int // candidate pairs per job; 0 picks a default

	// Skip is consulted before verifying a pair, only when Threads == 1.
	// Returning true drops the pair unverified.
	Skip func(bucket.Pair) bool

	// Progress is called from the collector after each batch.
	Progress func(done, total int)
}

// Stats counts the verification work.
type Stats struct {
	Verified int
	Matched  int
	Skipped  int
}

// Sketches fingerprints every sequence. Each goroutine writes only its own
// slot, so the result is identical for any thread count.
func Sketches(ctx context.Context, threads int, seqs []string, g sketch.Generator) ([]sketch.Sketch, error) {
	if threads < 1 {
		threads = 1
	}
	out := make([]sketch.Sketch, len(seqs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(threads)

	step := (len(seqs) + threads - 1) / threads
	if step < 1 {
		step = 1
	}
	for lo := 0; lo < len(seqs); lo += step {
		lo, hi := lo, min(lo+step, len(seqs))
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				if i%256 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				out[i] = g.Sketch(seqs[i])
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// VerifyPairs runs m over every candidate pair and calls visit, from a single
// goroutine, for each pair that matches. Arrival order of matches is not
// defined when Threads > 1. It returns the first error from visit or the
// context.
func VerifyPairs(
	ctx context.Context,
	cfg Config,
	pairs []bucket.Pair,
	seqs []string,
	m Matcher,
	visit func(bucket.Pair) error,
) (Stats, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatch
	}
	if cfg.Threads == 1 {
		return verifySerial(ctx, cfg, pairs, seqs, m, visit)
	}

	type job struct{ lo, hi int }
	type result struct {
		n       int
		matched []bucket.Pair
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					var hits []bucket.Pair
					for _, p := range pairs[j.lo:j.hi] {
						if m.Match(seqs[p.A], seqs[p.B]) {
							hits = append(hits, p)
						}
					}
					select {
					case results <- result{n: j.hi - j.lo, matched: hits}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: sole caller of visit.
	var (
		st   Stats
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			st.Verified += r.n
			if cerr != nil {
				continue
			}
			for _, p := range r.matched {
				st.Matched++
				if err := visit(p); err != nil && cerr == nil {
					cerr = err
				}
			}
			if cfg.Progress != nil {
				cfg.Progress(st.Verified, len(pairs))
			}
		}
	}()

	// Feed work
feed:
	for lo := 0; lo < len(pairs); lo += cfg.BatchSize {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{lo: lo, hi: min(lo+cfg.BatchSize, len(pairs))}:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return st, ctx.Err()
	}
	return st, cerr
}

func verifySerial(
	ctx context.Context,
	cfg Config,
	pairs []bucket.Pair,
	seqs []string,
	m Matcher,
	visit func(bucket.Pair) error,
) (Stats, error) {
	var st Stats
	for i, p := range pairs {
		if i%cfg.BatchSize == 0 {
			if err := ctx.Err(); err != nil {
				return st, err
			}
			if cfg.Progress != nil && i > 0 {
				cfg.Progress(i, len(pairs))
			}
		}
		if cfg.Skip != nil && cfg.Skip(p) {
			st.Skipped++
			continue
		}
		st.Verified++
		if !m.Match(seqs[p.A], seqs[p.B]) {
			continue
		}
		st.Matched++
		if err := visit(p); err != nil {
			return st, err
		}
	}
	if cfg.Progress != nil {
		cfg.Progress(len(pairs), len(pairs))
	}
	return st, nil
}
