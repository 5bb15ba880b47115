// Package surface defines the drawing surface the calendar and pebble art are
// rendered onto, together with its implementations.
//
// # Coordinates
//
// Every surface uses PDF user space: origin in the lower-left corner of the
// page, y pointing up, one unit per point. Implementations that draw in a
// top-left coordinate system (SVG, raster images) flip y internally.
//
// # Implementations
//
//   - [SVG]: one SVG document per page, written into memory.
//   - [Raster]: anti-aliased bitmap pages via github.com/gogpu/gg.
//   - [Recorder]: records calls; used by tests to inspect what was drawn.
//
// # Errors
//
// Drawing calls do not return errors. A surface keeps the first failure and
// reports it from Err, in the manner of bufio.Writer.
package surface

import (
	"github.com/matzehuels/pebblecal/pkg/geom"
	"github.com/matzehuels/pebblecal/pkg/ink"
)

// A4 page size in points.
const (
	A4Width  = 595.2755905511812
	A4Height = 841.8897637795277
)

// Surface is a paged 2D vector drawing target.
type Surface interface {
	// Size returns the page size in points.
	Size() (w, h float64)

	SetFillColor(c ink.CMYK)
	SetStrokeColor(c ink.CMYK)
	SetLineWidth(w float64)
	// SetDash sets an on/off dash pattern. No arguments restores solid lines.
	SetDash(pattern ...float64)

	// Path construction. Fill and Stroke consume the current path.
	MoveTo(p geom.Point)
	LineTo(p geom.Point)
	CurveTo(c1, c2, p geom.Point)
	ClosePath()
	Fill()
	Stroke()

	// Rect fills an axis-aligned rectangle with the fill color.
	Rect(x, y, w, h float64)
	// RoundRect strokes a rectangle with corner radius r.
	RoundRect(x, y, w, h, r float64)
	// Line strokes a single segment.
	Line(a, b geom.Point)
	// Text draws s with its baseline starting at p, in the fill color.
	Text(s string, f Face, p geom.Point)

	// ShowPage ends the current page and starts a new one.
	ShowPage()

	// Err returns the first error encountered while drawing.
	Err() error
}
