package surface

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/pebblecal/pkg/geom"
	"github.com/matzehuels/pebblecal/pkg/ink"
)

// SVG renders each page as a standalone SVG document.
type SVG struct {
	width, height float64

	fill, stroke ink.CMYK
	lineWidth    float64
	dash         []float64

	path  strings.Builder
	page  bytes.Buffer
	pages [][]byte
}

// NewSVG creates an SVG surface with the given page size in points.
func NewSVG(width, height float64) *SVG {
	return &SVG{
		width:     width,
		height:    height,
		fill:      ink.Black,
		stroke:    ink.Black,
		lineWidth: 1,
	}
}

func (s *SVG) Size() (float64, float64) { return s.width, s.height }

func (s *SVG) SetFillColor(c ink.CMYK)   { s.fill = c }
func (s *SVG) SetStrokeColor(c ink.CMYK) { s.stroke = c }
func (s *SVG) SetLineWidth(w float64)    { s.lineWidth = w }

func (s *SVG) SetDash(pattern ...float64) {
	s.dash = append(s.dash[:0], pattern...)
}

func (s *SVG) MoveTo(p geom.Point) {
	fmt.Fprintf(&s.path, "M%.2f %.2f ", p.X, s.flip(p.Y))
}

func (s *SVG) LineTo(p geom.Point) {
	fmt.Fprintf(&s.path, "L%.2f %.2f ", p.X, s.flip(p.Y))
}

func (s *SVG) CurveTo(c1, c2, p geom.Point) {
	fmt.Fprintf(&s.path, "C%.2f %.2f %.2f %.2f %.2f %.2f ",
		c1.X, s.flip(c1.Y), c2.X, s.flip(c2.Y), p.X, s.flip(p.Y))
}

func (s *SVG) ClosePath() { s.path.WriteString("Z ") }

func (s *SVG) Fill() {
	if d := s.takePath(); d != "" {
		fmt.Fprintf(&s.page, `  <path d="%s" fill="%s" stroke="none"/>`+"\n", d, s.fill.Hex())
	}
}

func (s *SVG) Stroke() {
	if d := s.takePath(); d != "" {
		fmt.Fprintf(&s.page, `  <path d="%s" fill="none"%s/>`+"\n", d, s.strokeAttrs())
	}
}

func (s *SVG) Rect(x, y, w, h float64) {
	fmt.Fprintf(&s.page, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		x, s.flip(y+h), w, h, s.fill.Hex())
}

func (s *SVG) RoundRect(x, y, w, h, r float64) {
	fmt.Fprintf(&s.page, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" ry="%.2f" fill="none"%s/>`+"\n",
		x, s.flip(y+h), w, h, r, r, s.strokeAttrs())
}

func (s *SVG) Line(a, b geom.Point) {
	fmt.Fprintf(&s.page, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"%s/>`+"\n",
		a.X, s.flip(a.Y), b.X, s.flip(b.Y), s.strokeAttrs())
}

func (s *SVG) Text(str string, f Face, p geom.Point) {
	weight, style := "normal", "normal"
	if f.Style == Bold || f.Style == BoldItalic {
		weight = "bold"
	}
	if f.Style == Italic || f.Style == BoldItalic {
		style = "italic"
	}
	fmt.Fprintf(&s.page, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" font-weight="%s" font-style="%s" fill="%s">%s</text>`+"\n",
		p.X, s.flip(p.Y), FontFamily, f.Size, weight, style, s.fill.Hex(), escapeXML(str))
}

// ShowPage closes the current page. An untouched page is still emitted so
// blank pages survive into the output.
func (s *SVG) ShowPage() {
	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.2fpt" height="%.2fpt">`+"\n",
		s.width, s.height, s.width, s.height)
	fmt.Fprintf(&doc, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", ink.White.Hex())
	doc.Write(s.page.Bytes())
	doc.WriteString("</svg>\n")

	s.pages = append(s.pages, doc.Bytes())
	s.page.Reset()
	s.path.Reset()
}

// Pages returns the completed pages.
func (s *SVG) Pages() [][]byte { return s.pages }

func (s *SVG) Err() error { return nil }

func (s *SVG) flip(y float64) float64 { return s.height - y }

func (s *SVG) takePath() string {
	d := strings.TrimSpace(s.path.String())
	s.path.Reset()
	return d
}

func (s *SVG) strokeAttrs() string {
	attrs := fmt.Sprintf(` stroke="%s" stroke-width="%.2f"`, s.stroke.Hex(), s.lineWidth)
	if len(s.dash) > 0 {
		parts := make([]string, len(s.dash))
		for i, d := range s.dash {
			parts[i] = fmt.Sprintf("%.2f", d)
		}
		attrs += fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	return attrs
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

var _ Surface = (*SVG)(nil)
