package sink

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/matzehuels/pebblecal/pkg/errors"
	"github.com/matzehuels/pebblecal/pkg/observability"
)

const rsvgConvert = "rsvg-convert"

// ToPDF converts SVG pages into one multi-page PDF using rsvg-convert.
func ToPDF(ctx context.Context, pages [][]byte) (pdf []byte, err error) {
	if len(pages) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no pages to convert")
	}
	if _, err := exec.LookPath(rsvgConvert); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err,
			"pdf export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin")
	}

	start := time.Now()
	observability.Convert().OnConvertStart(ctx, rsvgConvert, len(pages))
	defer func() {
		observability.Convert().OnConvertComplete(ctx, rsvgConvert, len(pdf), time.Since(start), err)
	}()

	dir, err := os.MkdirTemp("", "pebblecal-pdf-")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	args := []string{"-f", "pdf"}
	for i, p := range pages {
		name := filepath.Join(dir, fmt.Sprintf("page-%03d.svg", i+1))
		if err := os.WriteFile(name, p, 0o600); err != nil {
			return nil, fmt.Errorf("write page %d: %w", i+1, err)
		}
		args = append(args, name)
	}

	cmd := exec.CommandContext(ctx, rsvgConvert, args...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "rsvg-convert: %s", errBuf.String())
	}
	return out.Bytes(), nil
}
