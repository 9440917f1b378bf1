// Package file opens corpus resources as byte streams, decompressing
// by name suffix.
package file

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Open returns a reader for the named resource. A name ending in
// .bz2 or .gz (case-insensitive) is decompressed transparently; any
// other name is read verbatim. Closing the returned reader closes the
// underlying file.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch {
	case hasSuffixFold(name, ".bz2"):
		return &decompressed{r: bzip2.NewReader(f), f: f}, nil
	case hasSuffixFold(name, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return &decompressed{r: zr, c: zr, f: f}, nil
	default:
		return f, nil
	}
}

func hasSuffixFold(name, suffix string) bool {
	return len(name) >= len(suffix) &&
		strings.EqualFold(name[len(name)-len(suffix):], suffix)
}

// decompressed couples a decompressing reader with the file it reads
// from, so that one Close releases both.
type decompressed struct {
	r io.Reader
	c io.Closer // the decompressor, when it needs closing
	f *os.File
}

func (d *decompressed) Read(p []byte) (int, error) {
	return d.r.Read(p)
}

func (d *decompressed) Close() error {
	var err error
	if d.c != nil {
		err = d.c.Close()
	}
	if cerr := d.f.Close(); err == nil {
		err = cerr
	}
	return err
}
