package sink

import (
	"context"

	"github.com/matzehuels/pebblecal/pkg/document"
)

// RenderPDF renders the document as a single PDF via SVG conversion.
func RenderPDF(ctx context.Context, doc *document.Document) ([]byte, error) {
	pages, err := RenderSVG(ctx, doc)
	if err != nil {
		return nil, err
	}
	return ToPDF(ctx, pages)
}
