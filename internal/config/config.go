// Package config loads dedup parameter defaults from a TOML or YAML file.
//
// Keys mirror the long flag names with underscores:
//
//	threshold = 92.5
//	window = 5
//	kmer = 12
//	sketch_size = 32
//	threads = 0
//	bucket_cap = 0
//	min_length = 0
//	both_strands = false
//	all_pairs = false
//	trim_n = false
//
// Unset keys leave the built-in default alone; explicit flags win over the file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"fadedup/internal/dedup"
)

// File holds the parameters present in a config file. Nil means absent.
type File struct {
	Threshold   *float64 `toml:"threshold" yaml:"threshold"`
	Window      *int     `toml:"window" yaml:"window"`
	Kmer        *int     `toml:"kmer" yaml:"kmer"`
	SketchSize  *int     `toml:"sketch_size" yaml:"sketch_size"`
	Threads     *int     `toml:"threads" yaml:"threads"`
	BucketCap   *int     `toml:"bucket_cap" yaml:"bucket_cap"`
	MinLength   *int     `toml:"min_length" yaml:"min_length"`
	BothStrands *bool    `toml:"both_strands" yaml:"both_strands"`
	AllPairs    *bool    `toml:"all_pairs" yaml:"all_pairs"`
	TrimN       *bool    `toml:"trim_n" yaml:"trim_n"`
}

// Load decodes path by extension: .toml, .yaml or .yml. Unknown keys are errors.
func Load(path string) (File, error) {
	var c File
	fh, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer fh.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.NewDecoder(fh).DisallowUnknownFields().Decode(&c); err != nil {
			return c, fmt.Errorf("config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(fh)
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return c, fmt.Errorf("config %s: %w", path, err)
		}
	default:
		return c, fmt.Errorf("config %s: unsupported extension %q (want .toml, .yaml or .yml)", path, ext)
	}
	return c, nil
}

// Apply copies every present value into o unless set(flagName) reports that
// the flag was given explicitly on the command line.
func (c File) Apply(o *dedup.Options, set func(flagName string) bool) {
	if set == nil {
		set = func(string) bool { return false }
	}
	if c.Threshold != nil && !set("threshold") {
		o.Threshold = *c.Threshold
	}
	if c.Window != nil && !set("window") {
		o.Window = *c.Window
	}
	if c.Kmer != nil && !set("kmer") {
		o.K = *c.Kmer
	}
	if c.SketchSize != nil && !set("sketch-size") {
		o.SketchSize = *c.SketchSize
	}
	if c.Threads != nil && !set("threads") {
		o.Threads = *c.Threads
	}
	if c.BucketCap != nil && !set("bucket-cap") {
		o.BucketCap = *c.BucketCap
	}
	if c.MinLength != nil && !set("min-length") {
		o.MinLength = *c.MinLength
	}
	if c.BothStrands != nil && !set("both-strands") {
		o.BothStrands = *c.BothStrands
	}
	if c.AllPairs != nil && !set("all-pairs") {
		o.AllPairs = *c.AllPairs
	}
	if c.TrimN != nil && !set("trim-n") {
		o.TrimN = *c.TrimN
	}
}
