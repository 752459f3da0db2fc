// internal/cli/options.go
package cli

import (
	"errors"

	"github.com/spf13/pflag"

	"fadedup/internal/cliutil"
	"fadedup/internal/config"
	"fadedup/internal/dedup"
	"fadedup/internal/runutil"
	"fadedup/internal/sketch"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Engine parameters
	Dedup dedup.Options

	// Input / output
	Inputs []string
	Output string
	Config string

	// Misc
	Progress bool
	Quiet    bool
}

// Register wires every flag onto fs.
func Register(fs *pflag.FlagSet, o *Options) {
	d := &o.Dedup

	// Matching
	fs.Float64VarP(&d.Threshold, "threshold", "p", dedup.DefaultThreshold, "percent identity at or above which records are duplicates, in (0,100]")
	fs.IntVarP(&d.Window, "window", "w", dedup.DefaultWindow, "alignment band half-width (max indel slack)")
	fs.BoolVarP(&d.BothStrands, "both-strands", "b", false, "also match reverse complements")
	fs.IntVar(&d.MinLength, "min-length", 0, "drop records shorter than N residues (0 = keep all)")
	fs.BoolVar(&d.TrimN, "trim-n", false, "ignore leading/trailing N runs when comparing (applied before --min-length)")

	// Sketching
	fs.IntVarP(&d.K, "kmer", "k", sketch.DefaultK, "k-mer length for minimizer sketches")
	fs.IntVarP(&d.SketchSize, "sketch-size", "s", sketch.DefaultSize, "minimizers kept per record")
	fs.IntVar(&d.BucketCap, "bucket-cap", 0, "skip minimizer buckets with more than N records (0 = unlimited)")
	fs.BoolVar(&d.AllPairs, "all-pairs", false, "verify every pair of records (quadratic; small inputs only)")

	// Performance
	fs.IntVarP(&d.Threads, "threads", "t", 0, "worker threads (0 = all CPUs)")

	// Output
	fs.StringVarP(&o.Output, "output", "o", "-", "output FASTA ('-' = stdout, .gz = gzip)")
	fs.StringVar(&o.Config, "config", "", "TOML or YAML file with parameter defaults")
	fs.BoolVar(&o.Progress, "progress", false, "show a verification progress bar on stderr")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress warnings and the summary")
}

// AfterParse expands positionals, folds in the config file and validates.
// It returns non-fatal warnings.
func AfterParse(fs *pflag.FlagSet, o *Options, posArgs []string) ([]string, error) {
	exp, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return nil, err
	}
	o.Inputs = append(o.Inputs, exp...)
	if len(o.Inputs) == 0 {
		return nil, errors.New("at least one input FASTA (or '-') is required")
	}

	if o.Config != "" {
		c, err := config.Load(o.Config)
		if err != nil {
			return nil, err
		}
		c.Apply(&o.Dedup, fs.Changed)
	}
	if err := o.Dedup.Validate(); err != nil {
		return nil, err
	}

	sketchChanged := fs.Changed("kmer") || fs.Changed("sketch-size")
	_, _, warns := runutil.ValidateSketch(o.Dedup.AllPairs, sketchChanged, o.Dedup.K, o.Dedup.SketchSize)
	return warns, nil
}
