package pipeline

// Matcher is the minimal capability the verification stage needs.
// Any verifier (including fakes in tests) can satisfy this.
type Matcher interface {
	Match(a, b string) bool
}
