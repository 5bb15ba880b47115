package sink

import (
	"context"

	"github.com/matzehuels/pebblecal/pkg/document"
	"github.com/matzehuels/pebblecal/pkg/surface"
)

// RenderSVG renders every page as a standalone SVG document.
func RenderSVG(ctx context.Context, doc *document.Document) ([][]byte, error) {
	s := surface.NewSVG(doc.Layout.PageWidth, doc.Layout.PageHeight)
	if err := document.Render(ctx, s, doc); err != nil {
		return nil, err
	}
	return s.Pages(), nil
}

// RenderSVGPage renders a single page.
func RenderSVGPage(doc *document.Document, p document.Page) []byte {
	s := surface.NewSVG(doc.Layout.PageWidth, doc.Layout.PageHeight)
	p.Draw(s)
	s.ShowPage()
	return s.Pages()[0]
}
