// internal/writers/output.go
package writers

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

type gzipFile struct {
	*gzip.Writer
	fh *os.File
}

func (g *gzipFile) Close() error {
	err := g.Writer.Close()
	if cerr := g.fh.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Create opens the output destination. "-" (or "") writes to stdout and
// Close leaves stdout open; a ".gz" suffix gzip-compresses the file.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		return &gzipFile{Writer: gzip.NewWriter(fh), fh: fh}, nil
	}
	return fh, nil
}

// WriteLines writes each line followed by a newline, unless it already
// ends with one.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
		if !strings.HasSuffix(l, "\n") {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
