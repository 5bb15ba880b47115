package pebble

import (
	"math"
	"testing"

	"github.com/matzehuels/pebblecal/pkg/geom"
	"github.com/matzehuels/pebblecal/pkg/ink"
	"github.com/matzehuels/pebblecal/pkg/random"
	"github.com/matzehuels/pebblecal/pkg/surface"
)

func noJitter() Options {
	o := DefaultOptions()
	o.RadiusX = random.IntRange{Lo: 20, Hi: 20}
	o.RadiusY = random.IntRange{Lo: 12, Hi: 12}
	o.HandleJitter = random.Range{}
	o.PositionJitter = random.Range{Lo: 1, Hi: 1}
	return o
}

func TestGenerateNoJitter(t *testing.T) {
	p := Generate(random.New(1), geom.Pt(100, 200), noJitter())

	want := [4]geom.Point{{X: 20}, {Y: 12}, {X: -20}, {Y: -12}}
	if got := p.ZeroPoints(); got != want {
		t.Errorf("ZeroPoints() = %v, want %v", got, want)
	}
	w, h := p.Measures()
	if w != 40 || h != 24 {
		t.Errorf("Measures() = (%v, %v), want (40, 24)", w, h)
	}
	if p.K != Kappa {
		t.Errorf("K = %v, want %v", p.K, Kappa)
	}
	e := p.Extents()
	if e != (Extents{MinX: -20, MinY: -12, MaxX: 20, MaxY: 12}) {
		t.Errorf("Extents() = %+v", e)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opts := DefaultOptions()
	a := Collection(random.New(42), 12, geom.Point{}, opts)
	b := Collection(random.New(42), 12, geom.Point{}, opts)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pebble %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateRanges(t *testing.T) {
	opts := DefaultOptions()
	rng := random.New(7)
	for i := 0; i < 200; i++ {
		p := Generate(rng, geom.Point{}, opts)
		if p.RX < 20 || p.RX > 36 || p.RY < 12 || p.RY > 20 {
			t.Fatalf("radii out of range: %d, %d", p.RX, p.RY)
		}
		if p.K < Kappa-0.05 || p.K > Kappa+0.07 {
			t.Fatalf("k out of range: %v", p.K)
		}
		if p.Color.K < 0.1 || p.Color.K > 0.9 || p.Color.C != 0 || p.Color.M != 0 || p.Color.Y != 0 {
			t.Fatalf("color not a grey in range: %v", p.Color)
		}
		for j, z := range p.ZeroPoints() {
			// each corner lies on its own axis
			ang := math.Atan2(z.Y, z.X)
			if ang < 0 {
				ang += 2 * math.Pi
			}
			if math.Abs(ang-Angles[j]) > 1e-9 {
				t.Fatalf("corner %d at angle %v, want %v", j, ang, Angles[j])
			}
		}
	}
}

func TestGenerateColorOverride(t *testing.T) {
	withGrey := DefaultOptions()
	override := DefaultOptions()
	override.Color = &ink.Magenta

	p := Generate(random.New(3), geom.Point{}, override)
	if p.Color != ink.Magenta {
		t.Errorf("Color = %v, want magenta", p.Color)
	}

	// The override skips the grey draw, so the corner scales shift by one draw.
	q := Generate(random.New(3), geom.Point{}, withGrey)
	if p.RX != q.RX || p.RY != q.RY || p.K != q.K {
		t.Errorf("leading draws differ: %+v vs %+v", p, q)
	}
}

func TestMoveKeepsShape(t *testing.T) {
	p := Generate(random.New(5), geom.Pt(10, 10), DefaultOptions())
	q := p.Move(geom.Pt(300, -40))

	if q.ZeroPoints() != p.ZeroPoints() {
		t.Error("Move changed zero points")
	}
	pw, ph := p.Measures()
	qw, qh := q.Measures()
	if pw != qw || ph != qh {
		t.Error("Move changed measures")
	}
	if p.Center != geom.Pt(10, 10) {
		t.Error("Move mutated the receiver")
	}

	delta := geom.Sub(q.Center, p.Center)
	pp, qp := p.Points(), q.Points()
	for i := range pp {
		if got := geom.Sub(qp[i], pp[i]); math.Abs(got.X-delta.X) > 1e-9 || math.Abs(got.Y-delta.Y) > 1e-9 {
			t.Errorf("point %d moved by %v, want %v", i, got, delta)
		}
	}
}

func TestControls(t *testing.T) {
	p := Generate(random.New(1), geom.Point{}, noJitter())
	kx, ky := Kappa*20, Kappa*12
	cs := p.Controls()

	want := [4]Control{
		{C1: geom.Pt(20, ky), C2: geom.Pt(kx, 12)},
		{C1: geom.Pt(-kx, 12), C2: geom.Pt(-20, ky)},
		{C1: geom.Pt(-20, -ky), C2: geom.Pt(-kx, -12)},
		{C1: geom.Pt(kx, -12), C2: geom.Pt(20, -ky)},
	}
	for i := range want {
		if !near(cs[i].C1, want[i].C1) || !near(cs[i].C2, want[i].C2) {
			t.Errorf("edge %d: got %+v, want %+v", i, cs[i], want[i])
		}
	}
}

func TestDraw(t *testing.T) {
	p := Generate(random.New(1), geom.Pt(50, 50), noJitter())
	rec := surface.NewRecorder()
	p.Draw(rec)

	ops := rec.Ops()
	if ops[0].Name != "fillcolor" || ops[0].Color != p.Color {
		t.Errorf("first op = %v, want fillcolor %v", ops[0], p.Color)
	}
	if ops[1].Name != "moveto" || ops[1].Points[0] != geom.Pt(70, 50) {
		t.Errorf("second op = %v, want moveto (70, 50)", ops[1])
	}
	if n := surface.CountOps(ops, "curveto"); n != 4 {
		t.Errorf("curveto count = %d, want 4", n)
	}
	if ops[len(ops)-1].Name != "fill" {
		t.Errorf("last op = %v, want fill", ops[len(ops)-1])
	}
	// the last curve closes on the first point
	last := ops[len(ops)-3]
	if last.Name != "curveto" || last.Points[2] != geom.Pt(70, 50) {
		t.Errorf("last curve = %v", last)
	}
}

func near(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
