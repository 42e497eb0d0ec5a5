package sample

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

const lz4Suffix = ".lz4"

type readCloser struct {
	io.Reader
	io.Closer
}

// Open returns a reader for path. "-" reads standard input and files ending
// in .lz4 are decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	if path == StdinPath || path == "" {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample: %w", err)
	}

	if strings.HasSuffix(strings.ToLower(path), lz4Suffix) {
		return readCloser{Reader: lz4.NewReader(file), Closer: file}, nil
	}

	return file, nil
}

// Load opens path and decodes it with opts.
func Load(path string, opts Options) (Dataset, error) {
	rc, err := Open(path)
	if err != nil {
		return Dataset{}, err
	}

	defer rc.Close()

	return Read(rc, opts)
}
