// Package pebble generates the stylized pebbles drawn in the calendar art.
//
// A pebble is a closed blob made of four cubic Bézier segments around a
// perturbed ellipse. Its shape is fixed when it is generated: the four corner
// offsets ("zero points") are drawn once from the radii and a per-corner
// scale jitter, and never recomputed. Placing a pebble only changes its
// center.
//
// Generation takes an explicit [random.Source], so the same seed replayed
// through the same sequence of calls yields the same pebbles.
package pebble

import (
	"math"

	"github.com/matzehuels/pebblecal/pkg/geom"
	"github.com/matzehuels/pebblecal/pkg/ink"
	"github.com/matzehuels/pebblecal/pkg/random"
	"github.com/matzehuels/pebblecal/pkg/surface"
)

// Kappa approximates a circular quadrant with a cubic Bézier curve.
const Kappa = 0.5522847498

// Angles are the directions of the four corners, counterclockwise from +x.
var Angles = [4]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}

// unit holds (cos, sin) of each angle. math.Cos(math.Pi/2) is not exactly
// zero, so the table is spelled out.
var unit = [4]geom.Point{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}

// Options controls generation. Ranges are closed and must satisfy Lo <= Hi.
type Options struct {
	// Color overrides the fill. When nil a random grey is drawn from Grey.
	Color *ink.CMYK

	RadiusX        random.IntRange
	RadiusY        random.IntRange
	HandleJitter   random.Range // added to Kappa
	PositionJitter random.Range // per-corner scale
	Grey           random.Range // key coverage of the default color
}

// DefaultOptions returns the ranges used by the calendar art.
func DefaultOptions() Options {
	return Options{
		RadiusX:        random.IntRange{Lo: 20, Hi: 36},
		RadiusY:        random.IntRange{Lo: 12, Hi: 20},
		HandleJitter:   random.Range{Lo: -0.05, Hi: 0.07},
		PositionJitter: random.Range{Lo: 0.7, Hi: 1.3},
		Grey:           random.Range{Lo: 0.1, Hi: 0.9},
	}
}

// Pebble is an immutable pebble shape positioned at Center.
type Pebble struct {
	Center geom.Point
	RX, RY int
	K      float64
	Color  ink.CMYK

	zero [4]geom.Point
}

// Extents is a bounding box relative to the pebble center.
type Extents struct {
	MinX, MinY, MaxX, MaxY float64
}

// Generate draws one pebble centered at center.
//
// Draw order is rx, ry, the handle jitter, the grey shade (only when no color
// override is given), then one scale per corner.
func Generate(rng random.Source, center geom.Point, opts Options) Pebble {
	p := Pebble{Center: center}
	p.RX = rng.Int(opts.RadiusX.Lo, opts.RadiusX.Hi)
	p.RY = rng.Int(opts.RadiusY.Lo, opts.RadiusY.Hi)
	p.K = Kappa + rng.Float(opts.HandleJitter.Lo, opts.HandleJitter.Hi)

	if opts.Color != nil {
		p.Color = *opts.Color
	} else {
		p.Color = RandomGrey(rng, opts.Grey)
	}

	for i, u := range unit {
		s := rng.Float(opts.PositionJitter.Lo, opts.PositionJitter.Hi)
		p.zero[i] = geom.Pt(float64(p.RX)*u.X*s, float64(p.RY)*u.Y*s)
	}
	return p
}

// RandomGrey draws a key-only ink with coverage in r.
func RandomGrey(rng random.Source, r random.Range) ink.CMYK {
	return ink.Grey(rng.Float(r.Lo, r.Hi))
}

// Move returns a copy of p centered at c. The shape is unchanged.
func (p Pebble) Move(c geom.Point) Pebble {
	p.Center = c
	return p
}

// ZeroPoints returns the corner offsets from the center.
func (p Pebble) ZeroPoints() [4]geom.Point { return p.zero }

// Points returns the absolute corner points.
func (p Pebble) Points() [4]geom.Point {
	var pts [4]geom.Point
	for i, z := range p.zero {
		pts[i] = geom.Add(p.Center, z)
	}
	return pts
}

// Control holds the two Bézier control points of one edge.
type Control struct {
	C1, C2 geom.Point
}

// Controls returns the control points of the edges 0→1, 1→2, 2→3 and 3→0.
func (p Pebble) Controls() [4]Control {
	pts := p.Points()
	kx, ky := p.K*float64(p.RX), p.K*float64(p.RY)

	var cs [4]Control
	for i := range unit {
		j := (i + 1) % len(unit)
		u1, u2 := unit[i], unit[j]
		cs[i] = Control{
			C1: geom.Add(pts[i], geom.Pt(-u1.Y*kx, u1.X*ky)),
			C2: geom.Add(pts[j], geom.Pt(u2.Y*kx, -u2.X*ky)),
		}
	}
	return cs
}

// Extents returns the bounding box of the zero points. It does not depend on
// the current center.
func (p Pebble) Extents() Extents {
	e := Extents{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, z := range p.zero {
		e.MinX = min(e.MinX, z.X)
		e.MinY = min(e.MinY, z.Y)
		e.MaxX = max(e.MaxX, z.X)
		e.MaxY = max(e.MaxY, z.Y)
	}
	return e
}

// Measures returns the width and height of the zero-point bounding box.
func (p Pebble) Measures() (w, h float64) {
	e := p.Extents()
	return e.MaxX - e.MinX, e.MaxY - e.MinY
}

// Draw fills the pebble outline.
func (p Pebble) Draw(s surface.Surface) {
	pts := p.Points()
	cs := p.Controls()

	s.SetFillColor(p.Color)
	s.MoveTo(pts[0])
	for i, c := range cs {
		s.CurveTo(c.C1, c.C2, pts[(i+1)%len(pts)])
	}
	s.ClosePath()
	s.Fill()
}

// Collection generates n pebbles in order, all centered at center.
func Collection(rng random.Source, n int, center geom.Point, opts Options) []Pebble {
	pebbles := make([]Pebble, n)
	for i := range pebbles {
		pebbles[i] = Generate(rng, center, opts)
	}
	return pebbles
}
