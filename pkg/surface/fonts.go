package surface

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Style selects a member of the font family.
type Style int

const (
	Regular Style = iota
	Bold
	Italic
	BoldItalic
)

func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bolditalic"
	default:
		return "regular"
	}
}

// FontFamily is the family name written into SVG output.
const FontFamily = "Go, 'Go Regular', Lato, sans-serif"

// Face is a font style at a point size.
type Face struct {
	Style Style
	Size  float64
}

// TTF returns the embedded TrueType data for the style.
func (s Style) TTF() []byte {
	switch s {
	case Bold:
		return gobold.TTF
	case Italic:
		return goitalic.TTF
	case BoldItalic:
		return gobolditalic.TTF
	default:
		return goregular.TTF
	}
}

// Metrics measures text for layout.
type Metrics interface {
	// Ascent is the distance from the baseline to the top of the tallest glyph.
	Ascent(f Face) float64
	// Width is the advance width of s.
	Width(s string, f Face) float64
}

// GoFonts measures text with the Go font family. The zero value is ready to
// use and safe for concurrent use.
type GoFonts struct {
	mu    sync.Mutex
	fonts map[Style]*opentype.Font
	faces map[Face]font.Face
}

// DefaultMetrics is shared by packages that do not need their own cache.
var DefaultMetrics = &GoFonts{}

// Ascent implements Metrics.
func (g *GoFonts) Ascent(f Face) float64 {
	face, err := g.face(f)
	if err != nil {
		return f.Size * 0.8
	}
	return fixedToFloat(face.Metrics().Ascent)
}

// Width implements Metrics.
func (g *GoFonts) Width(s string, f Face) float64 {
	face, err := g.face(f)
	if err != nil {
		return float64(len(s)) * f.Size * 0.55
	}
	return fixedToFloat(font.MeasureString(face, s))
}

func (g *GoFonts) face(f Face) (font.Face, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if face, ok := g.faces[f]; ok {
		return face, nil
	}
	if g.fonts == nil {
		g.fonts = make(map[Style]*opentype.Font)
		g.faces = make(map[Face]font.Face)
	}

	fnt, ok := g.fonts[f.Style]
	if !ok {
		var err error
		if fnt, err = opentype.Parse(f.Style.TTF()); err != nil {
			return nil, fmt.Errorf("parse %s font: %w", f.Style, err)
		}
		g.fonts[f.Style] = fnt
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("%s face at %.1fpt: %w", f.Style, f.Size, err)
	}
	g.faces[f] = face
	return face, nil
}

func fixedToFloat[T ~int32](v T) float64 { return float64(v) / 64 }

var _ Metrics = (*GoFonts)(nil)
