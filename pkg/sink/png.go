package sink

import (
	"context"

	"github.com/matzehuels/pebblecal/pkg/document"
	"github.com/matzehuels/pebblecal/pkg/surface"
)

// DefaultScale is the PNG resolution in pixels per point.
const DefaultScale = 2.0

// RenderPNG rasterizes every page. scale is pixels per point; values <= 0
// use DefaultScale.
func RenderPNG(ctx context.Context, doc *document.Document, scale float64) ([][]byte, error) {
	r := newRaster(doc, scale)
	defer r.Close()
	if err := document.Render(ctx, r, doc); err != nil {
		return nil, err
	}
	return r.Pages(), nil
}

// RenderPNGPage rasterizes a single page.
func RenderPNGPage(doc *document.Document, p document.Page, scale float64) ([]byte, error) {
	r := newRaster(doc, scale)
	defer r.Close()
	p.Draw(r)
	r.ShowPage()
	if err := r.Err(); err != nil {
		return nil, err
	}
	return r.Pages()[0], nil
}

func newRaster(doc *document.Document, scale float64) *surface.Raster {
	if scale <= 0 {
		scale = DefaultScale
	}
	return surface.NewRaster(doc.Layout.PageWidth, doc.Layout.PageHeight, scale)
}
