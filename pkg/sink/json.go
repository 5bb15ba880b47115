package sink

import (
	"encoding/json"

	"github.com/matzehuels/pebblecal/pkg/document"
	"github.com/matzehuels/pebblecal/pkg/holidays"
)

type jsonOutput struct {
	Year    int          `json:"year"`
	Seed    uint64       `json:"seed"`
	Build   string       `json:"build"`
	Width   float64      `json:"width"`
	Height  float64      `json:"height"`
	Pages   []jsonPage   `json:"pages"`
	Shelves []jsonShelf  `json:"shelves"`
	Pebbles []jsonPebble `json:"pebbles"`
	Bold    []jsonDate   `json:"bold,omitempty"`
	Italic  []jsonDate   `json:"italic,omitempty"`
}

type jsonPage struct {
	Kind  document.Kind `json:"kind"`
	Stage int           `json:"stage,omitempty"`
	Month int           `json:"month,omitempty"`
}

type jsonShelf struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonPebble struct {
	X     float64       `json:"x"`
	Y     float64       `json:"y"`
	RX    int           `json:"rx"`
	RY    int           `json:"ry"`
	K     float64       `json:"k"`
	Color [4]float64    `json:"cmyk"`
	Zero  [4][2]float64 `json:"zero_points"`
}

type jsonDate struct {
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}

// RenderJSON exports the page sequence, the placed artwork and the styled
// dates.
func RenderJSON(doc *document.Document) ([]byte, error) {
	out := jsonOutput{
		Year:   doc.Year,
		Seed:   doc.Seed,
		Build:  doc.BuildID.String(),
		Width:  doc.Layout.PageWidth,
		Height: doc.Layout.PageHeight,
		Bold:   jsonDates(doc.Bold),
		Italic: jsonDates(doc.Italic),
	}
	for _, p := range doc.Pages {
		out.Pages = append(out.Pages, jsonPage{Kind: p.Kind, Stage: p.Stage, Month: int(p.Month)})
	}
	for _, s := range doc.Art.Shelves {
		out.Shelves = append(out.Shelves, jsonShelf{X: s.Anchor.X, Y: s.Anchor.Y, Width: s.Width, Height: s.Height})
	}
	for _, p := range doc.Art.Pebbles {
		jp := jsonPebble{
			X: p.Center.X, Y: p.Center.Y,
			RX: p.RX, RY: p.RY, K: p.K,
			Color: [4]float64{p.Color.C, p.Color.M, p.Color.Y, p.Color.K},
		}
		for i, z := range p.ZeroPoints() {
			jp.Zero[i] = [2]float64{z.X, z.Y}
		}
		out.Pebbles = append(out.Pebbles, jp)
	}
	return json.MarshalIndent(out, "", "  ")
}

func jsonDates(s holidays.Set) []jsonDate {
	var out []jsonDate
	for _, d := range s.Sorted() {
		out = append(out, jsonDate{Date: d.String(), Name: s[d]})
	}
	return out
}
