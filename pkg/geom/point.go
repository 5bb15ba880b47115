// Package geom provides the small amount of 2D point arithmetic shared by the
// art, calendar, and surface packages.
//
// All coordinates are in PDF user space: the origin is the lower-left corner
// of the page, y grows upward, and one unit is one typographic point.
package geom

import "fmt"

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add translates a by b.
func Add(a, b Point) Point { return Point{X: a.X + b.X, Y: a.Y + b.Y} }

// Sub returns a - b.
func Sub(a, b Point) Point { return Point{X: a.X - b.X, Y: a.Y - b.Y} }

// Scale multiplies both components of p by f.
func Scale(p Point, f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }

func (p Point) String() string { return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y) }
