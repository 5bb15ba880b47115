package document

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/pebblecal/pkg/calendar"
	"github.com/matzehuels/pebblecal/pkg/errors"
	"github.com/matzehuels/pebblecal/pkg/holidays"
	"github.com/matzehuels/pebblecal/pkg/ink"
	"github.com/matzehuels/pebblecal/pkg/surface"
)

var testBuild = uuid.MustParse("6f1c1a8e-2b43-4d7e-9a5c-0f3e2d1b4c5a")

func newTestDoc(t *testing.T) *Document {
	t.Helper()
	bold, _ := holidays.Lookup("cz")
	italic, _ := holidays.Lookup("sk")
	d, err := New(Options{
		Year:    2024,
		Seed:    1234,
		Bold:    bold,
		Italic:  italic,
		BuildID: testBuild,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return d
}

func TestPageSequence(t *testing.T) {
	d := newTestDoc(t)
	if len(d.Pages) != 26 {
		t.Fatalf("pages = %d, want 26", len(d.Pages))
	}
	if d.Pages[0].Kind != KindCutLine || d.Pages[25].Kind != KindCutLine {
		t.Error("first and last pages must be cut lines")
	}
	for m := 1; m <= 12; m++ {
		a, mp := d.Pages[2*m-1], d.Pages[2*m]
		if a.Kind != KindArt || a.Stage != m {
			t.Errorf("page %d = %+v, want art stage %d", 2*m-1, a, m)
		}
		if mp.Kind != KindMonth || mp.Month != time.Month(m) {
			t.Errorf("page %d = %+v, want month %d", 2*m, mp, m)
		}
	}
}

func TestRender(t *testing.T) {
	d := newTestDoc(t)
	rec := surface.NewRecorder()
	if err := Render(context.Background(), rec, d); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	pages := rec.Pages()
	if len(pages) != 26 {
		t.Fatalf("rendered pages = %d, want 26", len(pages))
	}

	// art page k shows k pebbles
	for k := 1; k <= 12; k++ {
		if got := surface.CountOps(pages[2*k-1], "fill"); got != k {
			t.Errorf("art page %d: %d pebbles, want %d", k, got, k)
		}
	}

	// January 2024 has 31 squares and its title carries the year
	jan := pages[2]
	if got := surface.CountOps(jan, "roundrect"); got != 31 {
		t.Errorf("january squares = %d, want 31", got)
	}
	found := false
	for _, op := range jan {
		if op.Name == "text" && op.Text == "January 2024" {
			found = true
		}
	}
	if !found {
		t.Error("january title not drawn")
	}
}

func TestCutLines(t *testing.T) {
	d := newTestDoc(t)
	rec := surface.NewRecorder()
	if err := Render(context.Background(), rec, d); err != nil {
		t.Fatal(err)
	}
	pages := rec.Pages()

	check := func(ops []surface.Op, wantY float64) {
		t.Helper()
		var line *surface.Op
		for i := range ops {
			if ops[i].Name == "line" {
				line = &ops[i]
			}
		}
		if line == nil {
			t.Fatal("no cut line")
		}
		if math.Abs(line.Points[0].Y-wantY) > 1e-9 || line.Points[1].X != d.Layout.PageWidth {
			t.Errorf("cut line %v, want y=%v", line.Points, wantY)
		}
		if ops[0].Color != ink.Grey(0.5) {
			t.Errorf("cut line color = %v", ops[0].Color)
		}
	}
	check(pages[0], surface.A4Height-697)
	check(pages[25], 697)
}

func TestRenderCancelled(t *testing.T) {
	d := newTestDoc(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := surface.NewRecorder()
	if err := Render(ctx, rec, d); err != context.Canceled {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
	if len(rec.Pages()) != 0 {
		t.Error("pages rendered after cancel")
	}
}

func TestDeterministicArt(t *testing.T) {
	a, b := newTestDoc(t), newTestDoc(t)
	for i := range a.Art.Pebbles {
		if a.Art.Pebbles[i] != b.Art.Pebbles[i] {
			t.Fatalf("pebble %d differs for equal seeds", i)
		}
	}
}

func TestInvalidYear(t *testing.T) {
	_, err := New(Options{Year: 12})
	if !errors.Is(err, errors.ErrCodeInvalidYear) {
		t.Errorf("error = %v, want INVALID_YEAR", err)
	}
}

func TestLayout(t *testing.T) {
	l := A4()
	if math.Abs(l.DaysTopLeft.X-(surface.A4Width-480)/2) > 1e-9 || math.Abs(l.DaysTopLeft.Y-(surface.A4Height-170)) > 1e-9 {
		t.Errorf("DaysTopLeft = %v", l.DaysTopLeft)
	}
	if math.Abs(l.TitleCenter.X-surface.A4Width/2) > 1e-9 || math.Abs(l.TitleCenter.Y-(surface.A4Height-110)) > 1e-9 {
		t.Errorf("TitleCenter = %v", l.TitleCenter)
	}
	if l.ImageOrigin.Y != 110 || l.ImageOrigin.X != l.DaysTopLeft.X {
		t.Errorf("ImageOrigin = %v", l.ImageOrigin)
	}
}

func TestReport(t *testing.T) {
	d := &Document{
		Seed:    42,
		BuildID: testBuild,
		Bold: holidays.Set{
			calendar.D(2024, 5, 1): "Labour Day",
			calendar.D(2024, 1, 1): "New Year",
		},
		Italic: holidays.Set{},
	}
	want := "seed: 42\n" +
		"build: 6f1c1a8e-2b43-4d7e-9a5c-0f3e2d1b4c5a\n\n" +
		"bold dates:\n2024-01-01\n2024-05-01\n\n" +
		"italic dates:\n\n"
	if got := d.Report(); got != want {
		t.Errorf("Report() =\n%q\nwant\n%q", got, want)
	}

	var b strings.Builder
	if err := d.WriteReport(&b); err != nil || b.String() != want {
		t.Errorf("WriteReport() = %q, %v", b.String(), err)
	}
}

func TestArtPage(t *testing.T) {
	d := newTestDoc(t)
	for _, tt := range []struct{ in, want int }{{-1, 0}, {5, 5}, {99, 12}} {
		p := d.ArtPage(tt.in)
		rec := surface.NewRecorder()
		p.Draw(rec)
		if p.Stage != tt.want || rec.Count("fill") != tt.want {
			t.Errorf("ArtPage(%d) stage %d fills %d, want %d", tt.in, p.Stage, rec.Count("fill"), tt.want)
		}
	}
}
