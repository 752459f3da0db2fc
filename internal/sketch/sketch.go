// Package sketch computes bottom-s minimizer sketches over k-mer hashes.
//
// Two sequences that share enough identity are very likely to share at least
// one retained hash, which is what lets the bucket index avoid all-pairs
// comparison. It is a likelihood, not a guarantee: short k-mers and larger
// sketches raise recall, at the price of bigger buckets.
package sketch

import (
	"slices"

	"github.com/zeebo/wyhash"

	"fadedup/internal/strand"
)

const (
	DefaultK    = 12
	DefaultSize = 32

	hashSeed uint64 = 0x5eed_f00d_cafe_d00d
)

// Sketch is the ascending list of retained hashes for one sequence.
type Sketch struct {
	Minimizers []uint64
}

// Generator holds the sketch parameters. The zero value is not usable;
// K and Size must be >= 1.
type Generator struct {
	K           int
	Size        int
	BothStrands bool // canonical k-mers: min(hash(kmer), hash(revcomp(kmer)))
}

// Sketch returns the Size smallest distinct k-mer hashes of seq. A sequence
// shorter than K is hashed as a single window.
func (g Generator) Sketch(seq string) Sketch {
	if len(seq) == 0 {
		return Sketch{}
	}
	k := g.K
	if len(seq) < k {
		k = len(seq)
	}
	var rc string
	if g.BothStrands {
		rc = strand.RevComp(seq)
	}

	n := len(seq) - k + 1
	hs := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		h := wyhash.HashString(seq[i:i+k], hashSeed)
		if g.BothStrands {
			j := len(seq) - k - i
			if hr := wyhash.HashString(rc[j:j+k], hashSeed); hr < h {
				h = hr
			}
		}
		hs = append(hs, h)
	}
	slices.Sort(hs)
	hs = slices.Compact(hs)
	if len(hs) > g.Size {
		hs = hs[:g.Size]
	}
	return Sketch{Minimizers: slices.Clip(hs)}
}
