package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/pebblecal/pkg/errors"
	"github.com/matzehuels/pebblecal/pkg/sink"
)

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// basePath derives the base output path. If output has a format extension
// (.pdf, .svg, ...), the extension is stripped.
func basePath(output string) string {
	ext := filepath.Ext(output)
	if _, err := sink.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactPaths names the files of one format. Single-file formats get
// base.ext; paged formats get base-01.ext, base-02.ext, ...
func artifactPaths(base string, format sink.Format, n int) []string {
	if !format.Paged() {
		return []string{base + "." + format.Ext()}
	}
	paths := make([]string, n)
	for i := range paths {
		paths[i] = fmt.Sprintf("%s-%02d.%s", base, i+1, format.Ext())
	}
	return paths
}

// writeArtifacts writes every artifact next to base, in format order, and
// returns the written paths.
func writeArtifacts(base string, formats []string, artifacts map[string][][]byte) ([]string, error) {
	if err := errors.ValidateOutputBase(base); err != nil {
		return nil, err
	}
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	var written []string
	for _, name := range formats {
		format, err := sink.ParseFormat(name)
		if err != nil {
			return written, err
		}
		files := artifacts[name]
		if len(files) == 0 {
			continue
		}
		for i, path := range artifactPaths(base, format, len(files)) {
			if err := os.WriteFile(path, files[i], 0o644); err != nil {
				return written, fmt.Errorf("write output %s: %w", path, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}
