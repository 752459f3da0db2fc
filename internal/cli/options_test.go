package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"fadedup/internal/dedup"
)

func parse(t *testing.T, argv ...string) (*pflag.FlagSet, Options) {
	t.Helper()
	var o Options
	fs := pflag.NewFlagSet("fadedup", pflag.ContinueOnError)
	Register(fs, &o)
	if err := fs.Parse(argv); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return fs, o
}

func TestDefaults(t *testing.T) {
	fs, o := parse(t, "in.fa")
	if _, err := AfterParse(fs, &o, fs.Args()); err != nil {
		t.Fatalf("after parse: %v", err)
	}
	if o.Dedup.Threshold != 90 || o.Dedup.Window != dedup.DefaultWindow || o.Dedup.K != 12 || o.Dedup.SketchSize != 32 {
		t.Fatalf("unexpected defaults: %+v", o.Dedup)
	}
	if o.Output != "-" || len(o.Inputs) != 1 || o.Inputs[0] != "in.fa" {
		t.Fatalf("unexpected io options: %+v", o)
	}
}

func TestDefaultsMatchEngine(t *testing.T) {
	fs, o := parse(t, "in.fa")
	if _, err := AfterParse(fs, &o, fs.Args()); err != nil {
		t.Fatalf("after parse: %v", err)
	}
	d := dedup.DefaultOptions()
	if o.Dedup.K != d.K || o.Dedup.SketchSize != d.SketchSize || o.Dedup.TrimN {
		t.Fatalf("cli defaults %+v drift from engine defaults %+v", o.Dedup, d)
	}
}

func TestTrimNFlag(t *testing.T) {
	fs, o := parse(t, "--trim-n", "x.fa")
	if _, err := AfterParse(fs, &o, fs.Args()); err != nil {
		t.Fatalf("after parse: %v", err)
	}
	if !o.Dedup.TrimN {
		t.Fatal("--trim-n not set")
	}
}

func TestShorthands(t *testing.T) {
	fs, o := parse(t, "-p", "97.5", "-w", "20", "-b", "-t", "3", "-q", "x.fa", "-")
	if _, err := AfterParse(fs, &o, fs.Args()); err != nil {
		t.Fatalf("after parse: %v", err)
	}
	if o.Dedup.Threshold != 97.5 || o.Dedup.Window != 20 || !o.Dedup.BothStrands || o.Dedup.Threads != 3 || !o.Quiet {
		t.Fatalf("unexpected: %+v", o)
	}
	if len(o.Inputs) != 2 || o.Inputs[1] != "-" {
		t.Fatalf("inputs: %v", o.Inputs)
	}
}

func TestRequiresInput(t *testing.T) {
	fs, o := parse(t)
	if _, err := AfterParse(fs, &o, fs.Args()); err == nil {
		t.Fatal("expected missing-input error")
	}
}

func TestInvalidThreshold(t *testing.T) {
	fs, o := parse(t, "--threshold", "0", "x.fa")
	_, err := AfterParse(fs, &o, fs.Args())
	if !errors.Is(err, dedup.ErrInvalidParameter) {
		t.Fatalf("want ErrInvalidParameter, got %v", err)
	}
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "p.toml")
	if err := os.WriteFile(fn, []byte("threshold = 80.0\nwindow = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fs, o := parse(t, "--config", fn, "--window", "7", "x.fa")
	if _, err := AfterParse(fs, &o, fs.Args()); err != nil {
		t.Fatalf("after parse: %v", err)
	}
	if o.Dedup.Threshold != 80 || o.Dedup.Window != 7 {
		t.Fatalf("config/flag precedence broken: %+v", o.Dedup)
	}
}

func TestSketchWarnings(t *testing.T) {
	fs, o := parse(t, "--all-pairs", "--kmer", "9", "x.fa")
	warns, err := AfterParse(fs, &o, fs.Args())
	if err != nil || len(warns) != 1 {
		t.Fatalf("want one warning, got %v (err %v)", warns, err)
	}
}
