// Package bucket groups records by shared minimizers and enumerates the
// candidate pairs worth verifying.
package bucket

import (
	"slices"

	"fadedup/internal/sketch"
)

// Pair is an unordered candidate pair, always A < B.
type Pair struct {
	A, B int32
}

func (p Pair) key() uint64 { return uint64(p.A)<<32 | uint64(uint32(p.B)) }

// Index maps a minimizer to the ascending ids of the records holding it.
type Index struct {
	buckets map[uint64][]int32
	keys    []uint64 // insertion order, for deterministic iteration

	Cap     int // buckets with more members than Cap are skipped (0 = unlimited)
	Skipped int // number of buckets skipped because of Cap
}

// Build inserts record i under every minimizer of sketches[i].
func Build(sketches []sketch.Sketch, capacity int) *Index {
	idx := &Index{buckets: make(map[uint64][]int32, len(sketches)*4), Cap: capacity}
	for id, s := range sketches {
		for _, m := range s.Minimizers {
			ids, ok := idx.buckets[m]
			if !ok {
				idx.keys = append(idx.keys, m)
			}
			idx.buckets[m] = append(ids, int32(id))
		}
	}
	return idx
}

// Len is the number of distinct buckets.
func (idx *Index) Len() int { return len(idx.keys) }

// Members returns the ids stored under key m.
func (idx *Index) Members(m uint64) []int32 { return idx.buckets[m] }

// Pairs returns every pair of distinct ids sharing at least one bucket, each
// pair once, sorted by (A, B). Single-member buckets contribute nothing.
func (idx *Index) Pairs() []Pair {
	idx.Skipped = 0
	seen := make(map[uint64]struct{})
	var out []Pair
	for _, k := range idx.keys {
		ids := idx.buckets[k]
		if len(ids) < 2 {
			continue
		}
		if idx.Cap > 0 && len(ids) > idx.Cap {
			idx.Skipped++
			continue
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				p := Pair{A: ids[i], B: ids[j]}
				if _, dup := seen[p.key()]; dup {
					continue
				}
				seen[p.key()] = struct{}{}
				out = append(out, p)
			}
		}
	}
	sortPairs(out)
	return out
}

// AllPairs enumerates every pair over n records in (A, B) order.
func AllPairs(n int) []Pair {
	if n < 2 {
		return nil
	}
	out := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pair{A: int32(i), B: int32(j)})
		}
	}
	return out
}

// LengthPairs pairs every record shorter than limit with each record whose
// length is within window of its own. Short sequences yield too few k-mers for
// a sketch to be trusted, so they are compared with all length-compatible
// peers instead. Output is sorted by (A, B).
func LengthPairs(lengths []int, limit, window int) []Pair {
	order := make([]int32, len(lengths))
	for i := range order {
		order[i] = int32(i)
	}
	slices.SortStableFunc(order, func(x, y int32) int { return lengths[x] - lengths[y] })

	var out []Pair
	for p, a := range order {
		la := lengths[a]
		if la >= limit {
			break
		}
		// Longer partners only; a shorter partner is itself short and
		// reaches this record from its own scan.
		for _, b := range order[p+1:] {
			if lengths[b]-la > window {
				break
			}
			out = append(out, Pair{A: min(a, b), B: max(a, b)})
		}
	}
	sortPairs(out)
	return out
}

// Merge returns the sorted union of two pair lists.
func Merge(a, b []Pair) []Pair {
	out := make([]Pair, 0, len(a)+len(b))
	out = append(append(out, a...), b...)
	sortPairs(out)
	return slices.Compact(out)
}

func sortPairs(ps []Pair) {
	slices.SortFunc(ps, func(x, y Pair) int {
		if x.A != y.A {
			return int(x.A - y.A)
		}
		return int(x.B - y.B)
	})
}
