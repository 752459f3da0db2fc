package align

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fadedup/internal/strand"
)

func TestMatchTable(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		t    float64
		w    int
		want bool
	}{
		{"identical", "ACGTACGT", "ACGTACGT", 100, 0, true},
		{"one mismatch at 90", "ACGTACGTAC", "ACGTACGTAA", 90, 0, true},
		{"one mismatch at 91", "ACGTACGTAC", "ACGTACGTAA", 91, 0, false},
		{"insertion outside band", "ACGTACGTAC", "ACGTTACGTAC", 90, 0, false},
		{"insertion inside band", "ACGTACGTAC", "ACGTTACGTAC", 90, 1, true},
		{"length gap exceeds window", "AAAA", "AAAAAAAA", 10, 2, false},
		{"short vs long cannot reach", "AAAAAAAAA", "AAAAAAAAAAAA", 80, 5, false},
		{"unrelated", "AAAAAAAAAA", "CCCCCCCCCC", 10, 3, false},
		{"empty", "", "ACGT", 1, 5, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := Verifier{Threshold: c.t, Window: c.w}
			assert.Equal(t, c.want, v.Match(c.a, c.b))
			assert.Equal(t, c.want, v.Match(c.b, c.a), "match must be symmetric")
		})
	}
}

func TestIdentityBand(t *testing.T) {
	assert.InDelta(t, 75.0, Verifier{Window: 0}.Identity("ACGT", "ACGA"), 1e-9)
	// a one-residue shift costs a lot on the main diagonal only
	assert.InDelta(t, 60.0, Verifier{Window: 0}.Identity("AAAAC", "CAAAA"), 1e-9)
	assert.InDelta(t, 80.0, Verifier{Window: 1}.Identity("AAAAC", "CAAAA"), 1e-9)
	assert.InDelta(t, 100.0*10/11, Verifier{Window: 1}.Identity("ACGTACGTAC", "ACGTTACGTAC"), 1e-9)
	assert.Zero(t, Verifier{Window: 1}.Identity("AC", "ACGT"))
}

func TestMatchAgreesWithIdentity(t *testing.T) {
	seqs := []string{"ACGTACGTAC", "ACGTTACGTAC", "ACGAACGTAC", "TCGTACGTA", "GGGTACGTAC", "ACGTACG"}
	for _, th := range []float64{50, 70, 80, 90, 95, 100} {
		for _, w := range []int{0, 1, 2, 4} {
			v := Verifier{Threshold: th, Window: w}
			for _, a := range seqs {
				for _, b := range seqs {
					want := len(a) > 0 && v.Identity(a, b) >= th
					assert.Equal(t, want, v.Match(a, b), "t=%v w=%d %s/%s", th, w, a, b)
				}
			}
		}
	}
}

func TestMatchBothStrands(t *testing.T) {
	a := "ACGGTCATTG"
	b := strand.RevComp(a)
	assert.False(t, Verifier{Threshold: 90}.Match(a, b))
	assert.True(t, Verifier{Threshold: 90, BothStrands: true}.Match(a, b))
}
