package shelf

import (
	"math"
	"testing"

	"github.com/matzehuels/pebblecal/pkg/geom"
	"github.com/matzehuels/pebblecal/pkg/ink"
	"github.com/matzehuels/pebblecal/pkg/surface"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  []geom.Point
	}{
		{"empty", 0, nil},
		{"negative", -2, nil},
		{"one", 1, []geom.Point{{X: 10, Y: 20}}},
		{"four", 4, []geom.Point{{X: 10, Y: 20}, {X: 10, Y: 92}, {X: 10, Y: 164}, {X: 10, Y: 236}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Build(geom.Pt(10, 20), tt.count, 72, 264, 2.4, ink.Black)
			if len(l) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(l), len(tt.want))
			}
			for i, s := range l {
				if s.Anchor != tt.want[i] {
					t.Errorf("shelf %d anchor = %v, want %v", i, s.Anchor, tt.want[i])
				}
			}
		})
	}
}

func TestUpperLeft(t *testing.T) {
	s := Shelf{Anchor: geom.Pt(36, 46.8), Width: 264, Height: 2.4}
	got := s.UpperLeft()
	if got.X != 36 || math.Abs(got.Y-49.2) > 1e-9 {
		t.Errorf("UpperLeft() = %v, want (36, 49.2)", got)
	}
}

func TestDraw(t *testing.T) {
	rec := surface.NewRecorder()
	Default(geom.Point{}).Draw(rec)

	if n := rec.Count("rect"); n != DefaultCount {
		t.Fatalf("rect count = %d, want %d", n, DefaultCount)
	}
	for _, op := range rec.Ops() {
		if op.Name == "fillcolor" && op.Color != ink.Black {
			t.Errorf("fill color = %v, want black", op.Color)
		}
		if op.Name == "rect" && (op.Args[2] != DefaultWidth || op.Args[3] != DefaultHeight) {
			t.Errorf("rect size = %v", op.Args)
		}
	}
}
