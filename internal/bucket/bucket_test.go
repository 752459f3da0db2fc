package bucket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fadedup/internal/sketch"
)

func sk(ms ...uint64) sketch.Sketch { return sketch.Sketch{Minimizers: ms} }

func TestBuildMembers(t *testing.T) {
	idx := Build([]sketch.Sketch{sk(1, 2), sk(2, 3), sk(9)}, 0)
	assert.Equal(t, 4, idx.Len())
	assert.Equal(t, []int32{0, 1}, idx.Members(2))
	assert.Equal(t, []int32{2}, idx.Members(9))
}

func TestPairsDeduplicatedAcrossBuckets(t *testing.T) {
	// 0 and 1 share two minimizers but are one candidate pair.
	idx := Build([]sketch.Sketch{sk(1, 2, 5), sk(1, 2), sk(5), sk(7)}, 0)
	got := idx.Pairs()
	assert.Equal(t, []Pair{{0, 1}, {0, 2}}, got)
}

func TestPairsNoSharedMinimizers(t *testing.T) {
	idx := Build([]sketch.Sketch{sk(1), sk(2), sk(3)}, 0)
	assert.Empty(t, idx.Pairs())
}

func TestPairsBucketCap(t *testing.T) {
	idx := Build([]sketch.Sketch{sk(1, 4), sk(1), sk(1), sk(4)}, 2)
	got := idx.Pairs()
	require.Equal(t, 1, idx.Skipped)
	assert.Equal(t, []Pair{{0, 3}}, got)
}

func TestAllPairs(t *testing.T) {
	assert.Nil(t, AllPairs(1))
	assert.Equal(t, []Pair{{0, 1}, {0, 2}, {1, 2}}, AllPairs(3))
}

func TestLengthPairs(t *testing.T) {
	// ids 0..4 with lengths; limit 30, window 2
	lengths := []int{20, 50, 21, 25, 31}
	got := LengthPairs(lengths, 30, 2)
	assert.Equal(t, []Pair{{0, 2}}, got)

	// a short record reaches a long peer within the window
	got = LengthPairs([]int{29, 31, 100}, 30, 2)
	assert.Equal(t, []Pair{{0, 1}}, got)

	assert.Empty(t, LengthPairs([]int{40, 41}, 30, 5), "no short records")
}

func TestLengthPairsEqualLengths(t *testing.T) {
	got := LengthPairs([]int{10, 10, 10}, 44, 0)
	assert.Equal(t, []Pair{{0, 1}, {0, 2}, {1, 2}}, got)
}

func TestMerge(t *testing.T) {
	got := Merge([]Pair{{0, 3}, {1, 2}}, []Pair{{0, 1}, {1, 2}})
	require.Len(t, got, 3)
	assert.Equal(t, []Pair{{0, 1}, {0, 3}, {1, 2}}, got)
}
