package sketch

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fadedup/internal/strand"
)

func TestSketchDeterministic(t *testing.T) {
	g := Generator{K: 4, Size: 8}
	a := g.Sketch("ACGTTGCAACGGT")
	b := g.Sketch("ACGTTGCAACGGT")
	assert.Equal(t, a, b)
}

func TestSketchSortedDistinctBounded(t *testing.T) {
	g := Generator{K: 3, Size: 5}
	s := g.Sketch("AAAAAAAACGTACGTACGTTTTTT")
	require.LessOrEqual(t, len(s.Minimizers), 5)
	assert.True(t, slices.IsSorted(s.Minimizers))
	assert.Len(t, slices.Compact(slices.Clone(s.Minimizers)), len(s.Minimizers))
}

func TestSketchRepeatCollapses(t *testing.T) {
	// a homopolymer has one distinct k-mer
	s := Generator{K: 4, Size: 16}.Sketch("AAAAAAAAAA")
	assert.Len(t, s.Minimizers, 1)
}

func TestSketchShortSequenceSingleWindow(t *testing.T) {
	g := Generator{K: 12, Size: 32}
	s := g.Sketch("ACGTACGT")
	require.Len(t, s.Minimizers, 1)
	assert.NotEqual(t, g.Sketch("TTTTTTTT").Minimizers, s.Minimizers)
}

func TestSketchBottomOfFull(t *testing.T) {
	seq := "ACGTTGCATGCATGCCAGTAGCTAGCTAGGATCGATCGA"
	full := Generator{K: 5, Size: 1000}.Sketch(seq)
	small := Generator{K: 5, Size: 4}.Sketch(seq)
	assert.Equal(t, full.Minimizers[:4], small.Minimizers)
}

func TestSketchBothStrandsCanonical(t *testing.T) {
	seq := "ACGGTCATTGACCAGTTAGC"
	g := Generator{K: 5, Size: 64, BothStrands: true}
	assert.Equal(t, g.Sketch(seq), g.Sketch(strand.RevComp(seq)))

	single := Generator{K: 5, Size: 64}
	assert.NotEqual(t, single.Sketch(seq), single.Sketch(strand.RevComp(seq)))
}

func TestSketchEmpty(t *testing.T) {
	assert.Empty(t, Generator{K: 4, Size: 4}.Sketch("").Minimizers)
}
