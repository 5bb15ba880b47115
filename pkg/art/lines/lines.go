// Package lines draws the dashed rule lines behind the pebble art.
package lines

import (
	"github.com/matzehuels/pebblecal/pkg/geom"
	"github.com/matzehuels/pebblecal/pkg/ink"
	"github.com/matzehuels/pebblecal/pkg/surface"
)

// Defaults used by the calendar art.
const (
	DefaultSpacing   = 24.0
	DefaultLineWidth = 0.6
)

// DefaultDash is 6 points on, 12 off.
var DefaultDash = []float64{6, 12}

// Lines is a set of parallel rules filling the box from Start to End.
type Lines struct {
	Start, End geom.Point
	Spacing    float64
	Vertical   bool
	Color      ink.CMYK
	LineWidth  float64
	Dash       []float64
}

// New returns vertical magenta rules between start and end with the default
// spacing, width and dash.
func New(start, end geom.Point) Lines {
	return Lines{
		Start:     start,
		End:       end,
		Spacing:   DefaultSpacing,
		Vertical:  true,
		Color:     ink.Magenta,
		LineWidth: DefaultLineWidth,
		Dash:      DefaultDash,
	}
}

// Segments returns the rules, first to last. A rule is emitted at every
// multiple of Spacing from Start that does not pass End.
func (l Lines) Segments() [][2]geom.Point {
	if l.Spacing <= 0 {
		return nil
	}
	const eps = 1e-9

	var segs [][2]geom.Point
	for i := 0; ; i++ {
		off := float64(i) * l.Spacing
		if l.Vertical {
			x := l.Start.X + off
			if x > l.End.X+eps {
				break
			}
			segs = append(segs, [2]geom.Point{geom.Pt(x, l.Start.Y), geom.Pt(x, l.End.Y)})
		} else {
			y := l.Start.Y + off
			if y > l.End.Y+eps {
				break
			}
			segs = append(segs, [2]geom.Point{geom.Pt(l.Start.X, y), geom.Pt(l.End.X, y)})
		}
	}
	return segs
}

// Draw strokes the rules and resets the dash pattern afterwards.
func (l Lines) Draw(s surface.Surface) {
	s.SetStrokeColor(l.Color)
	s.SetLineWidth(l.LineWidth)
	s.SetDash(l.Dash...)
	for _, seg := range l.Segments() {
		s.Line(seg[0], seg[1])
	}
	s.SetDash()
}
