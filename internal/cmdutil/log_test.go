package cmdutil

import (
	"bytes"
	"testing"
)

func TestLoggerQuiet(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, true)
	l.Infof("hello %d", 1)
	l.Warnf("careful")
	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", buf.String())
	}
	l.Errorf("bad %s", "input")
	if buf.String() != "ERROR: bad input\n" {
		t.Fatalf("errors must pass through quiet, got %q", buf.String())
	}
}

func TestLoggerPrefixes(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, false)
	l.Infof("a=%d", 1)
	l.Warnf("b")
	if got, want := buf.String(), "INFO: a=1\nWARN: b\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
