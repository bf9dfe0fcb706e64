package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// openInput returns the token stream for the run when no literal values
// were given. "" or "-" reads stdin; a path ending in .gz is
// decompressed on the fly.
func openInput(cfg Config) (io.ReadCloser, error) {
	if cfg.InputPath == "" || cfg.InputPath == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(cfg.InputPath, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", cfg.InputPath, err)
		}
		return &gzipReadCloser{zr: zr, f: f}, nil
	}
	return f, nil
}

// gzipReadCloser closes both the gzip stream and the file under it.
type gzipReadCloser struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipReadCloser) Close() error {
	zerr := g.zr.Close()
	ferr := g.f.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}

// scanTokens calls fn for each input token in r: one per line, blank
// lines and '#' comments skipped. fn returning false stops the scan.
func scanTokens(r io.Reader, fn func(string) bool) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !fn(line) {
			break
		}
	}
	return sc.Err()
}
