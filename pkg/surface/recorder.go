package surface

import (
	"fmt"

	"github.com/matzehuels/pebblecal/pkg/geom"
	"github.com/matzehuels/pebblecal/pkg/ink"
)

// Op is one recorded drawing call.
type Op struct {
	Name   string
	Points []geom.Point
	Args   []float64
	Color  ink.CMYK
	Text   string
	Face   Face
}

func (o Op) String() string {
	return fmt.Sprintf("%s%v%v", o.Name, o.Points, o.Args)
}

// Recorder is a Surface that records every call. Page boundaries are kept so
// tests can inspect a single page.
type Recorder struct {
	Width, Height float64

	pages [][]Op
	cur   []Op
}

// NewRecorder returns a recorder with an A4 page.
func NewRecorder() *Recorder {
	return &Recorder{Width: A4Width, Height: A4Height}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) SetFillColor(c ink.CMYK)   { r.add(Op{Name: "fillcolor", Color: c}) }
func (r *Recorder) SetStrokeColor(c ink.CMYK) { r.add(Op{Name: "strokecolor", Color: c}) }
func (r *Recorder) SetLineWidth(w float64)    { r.add(Op{Name: "linewidth", Args: []float64{w}}) }
func (r *Recorder) SetDash(p ...float64)      { r.add(Op{Name: "dash", Args: append([]float64(nil), p...)}) }
func (r *Recorder) MoveTo(p geom.Point)       { r.add(Op{Name: "moveto", Points: []geom.Point{p}}) }
func (r *Recorder) LineTo(p geom.Point)       { r.add(Op{Name: "lineto", Points: []geom.Point{p}}) }
func (r *Recorder) CurveTo(c1, c2, p geom.Point) {
	r.add(Op{Name: "curveto", Points: []geom.Point{c1, c2, p}})
}
func (r *Recorder) ClosePath() { r.add(Op{Name: "closepath"}) }
func (r *Recorder) Fill()      { r.add(Op{Name: "fill"}) }
func (r *Recorder) Stroke()    { r.add(Op{Name: "stroke"}) }
func (r *Recorder) Rect(x, y, w, h float64) {
	r.add(Op{Name: "rect", Args: []float64{x, y, w, h}})
}
func (r *Recorder) RoundRect(x, y, w, h, rad float64) {
	r.add(Op{Name: "roundrect", Args: []float64{x, y, w, h, rad}})
}
func (r *Recorder) Line(a, b geom.Point) { r.add(Op{Name: "line", Points: []geom.Point{a, b}}) }
func (r *Recorder) Text(s string, f Face, p geom.Point) {
	r.add(Op{Name: "text", Text: s, Face: f, Points: []geom.Point{p}})
}

func (r *Recorder) ShowPage() {
	r.pages = append(r.pages, r.cur)
	r.cur = nil
}

func (r *Recorder) Err() error { return nil }

// Ops returns the calls on the current, unfinished page.
func (r *Recorder) Ops() []Op { return r.cur }

// Pages returns the finished pages.
func (r *Recorder) Pages() [][]Op { return r.pages }

// Count returns how many ops named name are on the current page.
func (r *Recorder) Count(name string) int {
	return CountOps(r.cur, name)
}

// CountOps counts ops named name.
func CountOps(ops []Op, name string) int {
	n := 0
	for _, op := range ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

func (r *Recorder) add(op Op) { r.cur = append(r.cur, op) }

var _ Surface = (*Recorder)(nil)
