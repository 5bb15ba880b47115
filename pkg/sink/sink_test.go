package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"os/exec"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/pebblecal/pkg/document"
	"github.com/matzehuels/pebblecal/pkg/errors"
	"github.com/matzehuels/pebblecal/pkg/holidays"
)

func testDoc(t *testing.T) *document.Document {
	t.Helper()
	sk, _ := holidays.Lookup("sk")
	doc, err := document.New(document.Options{
		Year:    2024,
		Seed:    7,
		Italic:  sk,
		BuildID: uuid.MustParse("00000000-0000-4000-8000-000000000001"),
	})
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"pdf", FormatPDF, false},
		{" SVG ", FormatSVG, false},
		{"png", FormatPNG, false},
		{"json", FormatJSON, false},
		{"txt", FormatReport, false},
		{"gif", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ParseFormat(%q) code = %v", tt.in, errors.GetCode(err))
		}
	}
}

func TestRenderSVG(t *testing.T) {
	pages, err := RenderSVG(context.Background(), testDoc(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 26 {
		t.Fatalf("pages = %d, want 26", len(pages))
	}
	for i, p := range pages {
		if !bytes.HasPrefix(p, []byte("<svg")) {
			t.Errorf("page %d is not svg", i+1)
		}
	}
	if !bytes.Contains(pages[2], []byte("January 2024")) {
		t.Error("january title missing")
	}
	// twelve pebbles on the last art page
	if n := bytes.Count(pages[23], []byte("<path")); n != 12 {
		t.Errorf("last art page paths = %d, want 12", n)
	}
}

func TestRenderSVGPage(t *testing.T) {
	doc := testDoc(t)
	page := RenderSVGPage(doc, doc.ArtPage(3))
	if n := bytes.Count(page, []byte("<path")); n != 3 {
		t.Errorf("paths = %d, want 3", n)
	}
}

func TestRenderPNGPage(t *testing.T) {
	doc := testDoc(t)
	data, err := RenderPNGPage(doc, doc.ArtPage(12), 0.5)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 298 || b.Dy() != 421 {
		t.Errorf("size = %dx%d, want 298x421", b.Dx(), b.Dy())
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testDoc(t))
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		Year    int    `json:"year"`
		Seed    uint64 `json:"seed"`
		Build   string `json:"build"`
		Pages   []any  `json:"pages"`
		Shelves []any  `json:"shelves"`
		Pebbles []struct {
			RX int `json:"rx"`
		} `json:"pebbles"`
		Italic []struct {
			Date string `json:"date"`
		} `json:"italic"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Year != 2024 || out.Seed != 7 || !strings.HasSuffix(out.Build, "0001") {
		t.Errorf("header = %d %d %s", out.Year, out.Seed, out.Build)
	}
	if len(out.Pages) != 26 || len(out.Shelves) != 4 || len(out.Pebbles) != 12 {
		t.Errorf("counts = %d pages, %d shelves, %d pebbles", len(out.Pages), len(out.Shelves), len(out.Pebbles))
	}
	if len(out.Italic) == 0 || out.Italic[0].Date != "2024-01-01" {
		t.Errorf("italic = %v", out.Italic)
	}
}

func TestRenderReport(t *testing.T) {
	r := string(RenderReport(testDoc(t)))
	if !strings.HasPrefix(r, "seed: 7\nbuild: 00000000-0000-4000-8000-000000000001\n") {
		t.Errorf("report = %q", r)
	}
	if !strings.Contains(r, "italic dates:\n2024-01-01\n2024-01-06") {
		t.Errorf("report missing italic dates: %q", r)
	}
}

func TestToPDFNoPages(t *testing.T) {
	if _, err := ToPDF(context.Background(), nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestRenderPDF(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		t.Skip("rsvg-convert not installed")
	}
	pdf, err := RenderPDF(context.Background(), testDoc(t))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RenderSVG(ctx, testDoc(t)); err != context.Canceled {
		t.Errorf("RenderSVG error = %v", err)
	}
	if _, err := RenderPNG(ctx, testDoc(t), 0.25); err != context.Canceled {
		t.Errorf("RenderPNG error = %v", err)
	}
}
