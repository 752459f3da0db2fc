// Package align decides whether two sequences are near-duplicates using a
// banded alignment.
package align

import "fadedup/internal/strand"

// Verifier holds the match predicate parameters.
type Verifier struct {
	Threshold   float64 // percent identity in (0, 100]
	Window      int     // band half-width w; the band spans 2w+1 diagonals
	BothStrands bool    // also compare a against revcomp(b)
}

// Match reports whether Identity(a, b) >= Threshold. It exits early whenever
// the threshold is provably out of reach. The relation is symmetric.
func (v Verifier) Match(a, b string) bool {
	if v.matchStrand(a, b) {
		return true
	}
	return v.BothStrands && v.matchStrand(a, strand.RevComp(b))
}

// Identity returns matches/max(len(a), len(b))*100 for the best alignment in
// the band. Pairs whose length difference exceeds the band score 0.
func (v Verifier) Identity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 || abs(len(a)-len(b)) > v.Window {
		return 0
	}
	m := bandedMatches(a, b, v.Window, nil)
	return float64(m) * 100 / float64(longest)
}

func (v Verifier) matchStrand(a, b string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	if a == b {
		return reaches(len(a), len(a), v.Threshold)
	}
	if abs(len(a)-len(b)) > v.Window {
		return false
	}
	longest := max(len(a), len(b))
	if !reaches(min(len(a), len(b)), longest, v.Threshold) {
		return false
	}
	m := bandedMatches(a, b, v.Window, func(bound int) bool {
		return !reaches(bound, longest, v.Threshold)
	})
	return m >= 0 && reaches(m, longest, v.Threshold)
}

func reaches(matches, longest int, t float64) bool {
	return float64(matches)*100 >= t*float64(longest)
}

// bandedMatches returns the largest number of matching aligned positions over
// alignments confined to |i-j| <= w. The caller guarantees |len(a)-len(b)| <= w.
// After each row, hopeless(bound) is asked whether the best attainable total
// is already too low; if so -1 is returned.
func bandedMatches(a, b string, w int, hopeless func(bound int) bool) int {
	n, m := len(a), len(b)
	prev := make([]int, m+1)
	cur := make([]int, m+1)

	for i := 1; i <= n; i++ {
		lo := max(0, i-w)
		hi := min(m, i+w)
		rowBest := 0
		for j := lo; j <= hi; j++ {
			if j == 0 {
				cur[0] = 0
				continue
			}
			best := prev[j-1]
			if a[i-1] == b[j-1] {
				best++
			}
			if j <= i-1+w && prev[j] > best {
				best = prev[j]
			}
			if j-1 >= lo && cur[j-1] > best {
				best = cur[j-1]
			}
			cur[j] = best
			if best > rowBest {
				rowBest = best
			}
		}
		if hopeless != nil && hopeless(rowBest+n-i) {
			return -1
		}
		prev, cur = cur, prev
	}
	return prev[m]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
