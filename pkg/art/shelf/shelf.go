// Package shelf lays out the horizontal bars the pebbles rest on.
package shelf

import (
	"github.com/matzehuels/pebblecal/pkg/geom"
	"github.com/matzehuels/pebblecal/pkg/ink"
	"github.com/matzehuels/pebblecal/pkg/surface"
)

// Defaults used by the calendar art.
const (
	DefaultCount   = 4
	DefaultSpacing = 72.0
	DefaultWidth   = 264.0
	DefaultHeight  = 2.4
)

// Shelf is a filled rectangle anchored at its lower-left corner.
type Shelf struct {
	Anchor        geom.Point
	Width, Height float64
	Color         ink.CMYK
}

// UpperLeft is the top edge pebbles are seated on.
func (s Shelf) UpperLeft() geom.Point {
	return geom.Pt(s.Anchor.X, s.Anchor.Y+s.Height)
}

// Draw fills the shelf.
func (s Shelf) Draw(dst surface.Surface) {
	dst.SetFillColor(s.Color)
	dst.Rect(s.Anchor.X, s.Anchor.Y, s.Width, s.Height)
}

// Layout is an ordered stack of shelves, bottom first.
type Layout []Shelf

// Build stacks count shelves upward from bottomLeft, spacing apart.
func Build(bottomLeft geom.Point, count int, spacing, width, height float64, color ink.CMYK) Layout {
	if count <= 0 {
		return Layout{}
	}
	l := make(Layout, count)
	for i := range l {
		l[i] = Shelf{
			Anchor: geom.Add(bottomLeft, geom.Pt(0, float64(i)*spacing)),
			Width:  width,
			Height: height,
			Color:  color,
		}
	}
	return l
}

// Default builds the calendar's shelf stack at bottomLeft.
func Default(bottomLeft geom.Point) Layout {
	return Build(bottomLeft, DefaultCount, DefaultSpacing, DefaultWidth, DefaultHeight, ink.Black)
}

// Draw fills every shelf in order.
func (l Layout) Draw(dst surface.Surface) {
	for _, s := range l {
		s.Draw(dst)
	}
}
