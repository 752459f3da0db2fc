// Package pipeline runs the data-parallel stages of a dedup pass: sketching
// every record and verifying candidate pairs.
//
// The only contract a verifier has to meet is Matcher (Match). This keeps the
// pipeline swappable and testable.
package pipeline
