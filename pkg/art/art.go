// Package art assembles the pebble artwork and renders it in stages.
//
// A [Composition] is built once per calendar: background rules, a stack of
// shelves, and a collection of pebbles seated on those shelves. Each art page
// of the calendar shows a growing prefix of the pebbles, so stage n reveals
// the first n pebbles in creation order.
//
// Everything is positioned relative to one origin, the lower-left corner of
// the artwork.
package art

import (
	"github.com/matzehuels/pebblecal/pkg/art/lines"
	"github.com/matzehuels/pebblecal/pkg/art/pack"
	"github.com/matzehuels/pebblecal/pkg/art/pebble"
	"github.com/matzehuels/pebblecal/pkg/art/shelf"
	"github.com/matzehuels/pebblecal/pkg/errors"
	"github.com/matzehuels/pebblecal/pkg/geom"
	"github.com/matzehuels/pebblecal/pkg/ink"
	"github.com/matzehuels/pebblecal/pkg/random"
	"github.com/matzehuels/pebblecal/pkg/surface"
)

// Layout of the artwork relative to its origin.
var (
	LinesEnd    = geom.Pt(480, 408)
	ShelvesBase = geom.Pt(36, 46.8)
)

// Width and Height are the size of the artwork box.
const (
	Width  = 480.0
	Height = 408.0
)

// DefaultPebbles is one pebble per month.
const DefaultPebbles = 12

// Options configures a composition. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	Pebbles  int
	PerShelf int
	Gap      float64

	Shelves      int
	ShelfSpacing float64
	ShelfWidth   float64
	ShelfHeight  float64
	ShelfColor   ink.CMYK

	Pebble pebble.Options
}

// DefaultOptions returns the calendar's artwork settings.
func DefaultOptions() Options {
	return Options{
		Pebbles:      DefaultPebbles,
		PerShelf:     pack.DefaultPerShelf,
		Gap:          pack.DefaultGap,
		Shelves:      shelf.DefaultCount,
		ShelfSpacing: shelf.DefaultSpacing,
		ShelfWidth:   shelf.DefaultWidth,
		ShelfHeight:  shelf.DefaultHeight,
		ShelfColor:   ink.Black,
		Pebble:       pebble.DefaultOptions(),
	}
}

// Composition is the placed artwork.
type Composition struct {
	Origin  geom.Point
	Lines   lines.Lines
	Shelves shelf.Layout
	Pebbles []pebble.Pebble
}

// New generates and packs a composition with its lower-left corner at origin.
// Pebbles are drawn from rng in order. A CAPACITY error is returned when the
// shelves cannot hold opts.Pebbles.
func New(origin geom.Point, rng random.Source, opts Options) (*Composition, error) {
	if opts.Pebbles < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "pebble count must not be negative, got %d", opts.Pebbles)
	}

	shelves := shelf.Build(geom.Add(origin, ShelvesBase), opts.Shelves,
		opts.ShelfSpacing, opts.ShelfWidth, opts.ShelfHeight, opts.ShelfColor)

	if opts.Pebbles > pack.Capacity(shelves, opts.PerShelf) {
		return nil, errors.New(errors.ErrCodeCapacity,
			"%d pebbles do not fit on %d shelves of %d", opts.Pebbles, len(shelves), opts.PerShelf)
	}

	raw := pebble.Collection(rng, opts.Pebbles, origin, opts.Pebble)
	placed, err := pack.Pack(raw, shelves, opts.PerShelf, opts.Gap)
	if err != nil {
		return nil, err
	}

	return &Composition{
		Origin:  origin,
		Lines:   lines.New(origin, geom.Add(origin, LinesEnd)),
		Shelves: shelves,
		Pebbles: placed,
	}, nil
}

// Stages is the number of distinct reveal stages, one per pebble.
func (c *Composition) Stages() int { return len(c.Pebbles) }

// RenderStage draws the rules, the shelves and the first n pebbles. n is
// clamped to [0, Stages()].
func (c *Composition) RenderStage(s surface.Surface, n int) {
	c.Lines.Draw(s)
	c.Shelves.Draw(s)
	for _, p := range c.Visible(n) {
		p.Draw(s)
	}
}

// Visible returns the pebbles shown at stage n.
func (c *Composition) Visible(n int) []pebble.Pebble {
	n = max(0, min(n, len(c.Pebbles)))
	return c.Pebbles[:n]
}
