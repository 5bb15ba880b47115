package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/pebblecal/pkg/document"
	"github.com/matzehuels/pebblecal/pkg/errors"
	"github.com/matzehuels/pebblecal/pkg/sink"
)

// RenderFormat encodes doc into a single format.
func RenderFormat(ctx context.Context, doc *document.Document, format string, scale float64) ([][]byte, error) {
	f, err := sink.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	switch f {
	case sink.FormatSVG:
		return sink.RenderSVG(ctx, doc)
	case sink.FormatPNG:
		return sink.RenderPNG(ctx, doc, scale)
	case sink.FormatPDF:
		return single(sink.RenderPDF(ctx, doc))
	case sink.FormatJSON:
		return single(sink.RenderJSON(doc))
	case sink.FormatReport:
		return [][]byte{sink.RenderReport(doc)}, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "format %q has no renderer", f)
	}
}

// RenderPage encodes one page of doc as SVG or PNG.
func RenderPage(doc *document.Document, p document.Page, format string, scale float64) ([]byte, error) {
	f, err := sink.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	switch f {
	case sink.FormatSVG:
		return sink.RenderSVGPage(doc, p), nil
	case sink.FormatPNG:
		return sink.RenderPNGPage(doc, p, scale)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "single pages render as svg or png, not %s", f)
	}
}

func single(data []byte, err error) ([][]byte, error) {
	if err != nil {
		return nil, err
	}
	return [][]byte{data}, nil
}

// encodeFiles packs an artifact's files into one cache entry.
func encodeFiles(files [][]byte) ([]byte, error) {
	data, err := json.Marshal(files)
	if err != nil {
		return nil, fmt.Errorf("encode artifact: %w", err)
	}
	return data, nil
}

func decodeFiles(data []byte) ([][]byte, error) {
	var files [][]byte
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("decode artifact: no files")
	}
	return files, nil
}
