package surface

import (
	"bytes"
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/matzehuels/pebblecal/pkg/geom"
	"github.com/matzehuels/pebblecal/pkg/ink"
)

// Raster draws pages into bitmaps with github.com/gogpu/gg and encodes each
// finished page as PNG.
type Raster struct {
	width, height float64
	scale         float64

	dc           *gg.Context
	fill, stroke ink.CMYK
	lineWidth    float64
	dash         []float64

	sources map[Style]*text.FontSource
	pages   [][]byte
	err     error
}

// NewRaster creates a raster surface. scale is pixels per point; 2 gives
// roughly 144 dpi.
func NewRaster(width, height, scale float64) *Raster {
	if scale <= 0 {
		scale = 1
	}
	r := &Raster{
		width:     width,
		height:    height,
		scale:     scale,
		fill:      ink.Black,
		stroke:    ink.Black,
		lineWidth: 1,
		sources:   make(map[Style]*text.FontSource),
	}
	r.newPage()
	return r
}

func (r *Raster) newPage() {
	r.dc = gg.NewContext(int(math.Ceil(r.width*r.scale)), int(math.Ceil(r.height*r.scale)))
	r.dc.ClearWithColor(gg.White)
}

func (r *Raster) Size() (float64, float64) { return r.width, r.height }

func (r *Raster) SetFillColor(c ink.CMYK)   { r.fill = c }
func (r *Raster) SetStrokeColor(c ink.CMYK) { r.stroke = c }
func (r *Raster) SetLineWidth(w float64)    { r.lineWidth = w }

func (r *Raster) SetDash(pattern ...float64) {
	r.dash = append(r.dash[:0], pattern...)
}

func (r *Raster) MoveTo(p geom.Point) {
	x, y := r.px(p)
	r.dc.MoveTo(x, y)
}

func (r *Raster) LineTo(p geom.Point) {
	x, y := r.px(p)
	r.dc.LineTo(x, y)
}

func (r *Raster) CurveTo(c1, c2, p geom.Point) {
	x1, y1 := r.px(c1)
	x2, y2 := r.px(c2)
	x, y := r.px(p)
	r.dc.CubicTo(x1, y1, x2, y2, x, y)
}

func (r *Raster) ClosePath() { r.dc.ClosePath() }

func (r *Raster) Fill() {
	r.dc.SetColor(r.fill)
	r.keep(r.dc.Fill())
}

func (r *Raster) Stroke() {
	r.applyStroke()
	r.keep(r.dc.Stroke())
}

func (r *Raster) Rect(x, y, w, h float64) {
	px, py := r.px(geom.Pt(x, y+h))
	r.dc.DrawRectangle(px, py, w*r.scale, h*r.scale)
	r.Fill()
}

func (r *Raster) RoundRect(x, y, w, h, rad float64) {
	px, py := r.px(geom.Pt(x, y+h))
	r.dc.DrawRoundedRectangle(px, py, w*r.scale, h*r.scale, rad*r.scale)
	r.Stroke()
}

func (r *Raster) Line(a, b geom.Point) {
	r.MoveTo(a)
	r.LineTo(b)
	r.Stroke()
}

func (r *Raster) Text(s string, f Face, p geom.Point) {
	src, err := r.source(f.Style)
	if err != nil {
		r.keep(err)
		return
	}
	r.dc.SetFont(src.Face(f.Size * r.scale))
	r.dc.SetColor(r.fill)
	x, y := r.px(p)
	r.dc.DrawString(s, x, y)
}

// ShowPage encodes the current bitmap as PNG and starts a blank page.
func (r *Raster) ShowPage() {
	var buf bytes.Buffer
	if err := r.dc.EncodePNG(&buf); err != nil {
		r.keep(fmt.Errorf("encode page %d: %w", len(r.pages)+1, err))
	}
	r.pages = append(r.pages, buf.Bytes())
	r.keep(r.dc.Close())
	r.newPage()
}

// Pages returns the encoded PNG pages.
func (r *Raster) Pages() [][]byte { return r.pages }

func (r *Raster) Err() error { return r.err }

// Close releases the drawing context of the unfinished page.
func (r *Raster) Close() error {
	return r.dc.Close()
}

func (r *Raster) px(p geom.Point) (float64, float64) {
	q := geom.Scale(geom.Pt(p.X, r.height-p.Y), r.scale)
	return q.X, q.Y
}

func (r *Raster) applyStroke() {
	r.dc.SetColor(r.stroke)
	r.dc.SetLineWidth(r.lineWidth * r.scale)
	if len(r.dash) == 0 {
		r.dc.ClearDash()
		return
	}
	scaled := make([]float64, len(r.dash))
	for i, d := range r.dash {
		scaled[i] = d * r.scale
	}
	r.dc.SetDash(scaled...)
}

func (r *Raster) source(s Style) (*text.FontSource, error) {
	if src, ok := r.sources[s]; ok {
		return src, nil
	}
	src, err := text.NewFontSource(s.TTF())
	if err != nil {
		return nil, fmt.Errorf("load %s font: %w", s, err)
	}
	r.sources[s] = src
	return src, nil
}

func (r *Raster) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

var _ Surface = (*Raster)(nil)
