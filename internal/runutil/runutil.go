// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"
)

// EffectiveThreads maps the --threads value to a worker count:
// 0 (or less) means all CPUs.
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// ValidateSketch returns (k, sketchSize, warnings) for the given settings.
// Rules:
//   - --all-pairs makes sketching irrelevant (warn if sketch flags were changed)
//   - a long k lowers recall when mismatches are scattered (warn when k > 32)
//   - a sketch size of 1 makes bucketing a single-minimizer lottery (warn)
//
// Values are never altered here; parameter errors belong to dedup.Options.Validate.
func ValidateSketch(allPairs, sketchChanged bool, k, sketchSize int) (int, int, []string) {
	var warns []string
	if allPairs {
		if sketchChanged {
			warns = append(warns, "--all-pairs verifies every pair; ignoring --kmer/--sketch-size")
		}
		return k, sketchSize, warns
	}
	if k > 32 {
		warns = append(warns, fmt.Sprintf("--kmer %d is long; near-duplicates with scattered mismatches may share no minimizer", k))
	}
	if sketchSize == 1 {
		warns = append(warns, "--sketch-size 1 keeps a single minimizer; recall will be low")
	}
	return k, sketchSize, warns
}
