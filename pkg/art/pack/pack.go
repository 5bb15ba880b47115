// Package pack seats pebbles on shelves.
//
// Pebbles are placed strictly in slice order. Consecutive groups of perShelf
// pebbles share a shelf, left to right, separated by a fixed gap. Each pebble
// is positioned from its own extents so its leftmost corner touches the
// running offset and its lowest corner rests on the shelf's top edge.
// Packing draws no random numbers.
package pack

import (
	"github.com/matzehuels/pebblecal/pkg/art/pebble"
	"github.com/matzehuels/pebblecal/pkg/art/shelf"
	"github.com/matzehuels/pebblecal/pkg/errors"
	"github.com/matzehuels/pebblecal/pkg/geom"
)

// Defaults used by the calendar art.
const (
	DefaultPerShelf = 3
	DefaultGap      = 10.0
)

// Pack returns pebbles moved to their shelf positions. The input slice is not
// modified. An error with code CAPACITY is returned, and nothing is placed,
// when perShelf is not positive or the shelves cannot hold every pebble.
func Pack(pebbles []pebble.Pebble, shelves shelf.Layout, perShelf int, gap float64) ([]pebble.Pebble, error) {
	if perShelf <= 0 {
		return nil, errors.New(errors.ErrCodeCapacity, "pebbles per shelf must be positive, got %d", perShelf)
	}
	if len(pebbles) > len(shelves)*perShelf {
		return nil, errors.New(errors.ErrCodeCapacity,
			"%d pebbles do not fit on %d shelves of %d", len(pebbles), len(shelves), perShelf)
	}

	placed := make([]pebble.Pebble, len(pebbles))
	shift := 0.0
	for i, p := range pebbles {
		ul := shelves[i/perShelf].UpperLeft()
		e := p.Extents()
		placed[i] = p.Move(geom.Sub(geom.Pt(shift+ul.X, ul.Y), geom.Pt(e.MinX, e.MinY)))

		if (i+1)%perShelf == 0 {
			shift = 0
		} else {
			w, _ := p.Measures()
			shift += gap + w
		}
	}
	return placed, nil
}

// Capacity is the number of pebbles shelves can hold at perShelf each.
func Capacity(shelves shelf.Layout, perShelf int) int {
	return len(shelves) * max(perShelf, 0)
}
