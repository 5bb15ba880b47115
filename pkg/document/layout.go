package document

import (
	"github.com/matzehuels/pebblecal/pkg/geom"
	"github.com/matzehuels/pebblecal/pkg/ink"
	"github.com/matzehuels/pebblecal/pkg/surface"
)

// Layout places the calendar components on a page.
type Layout struct {
	PageWidth, PageHeight float64

	// DaysWidth is the width of the day grid and of the artwork.
	DaysWidth   float64
	DaysTopLeft geom.Point
	TitleCenter geom.Point
	ImageOrigin geom.Point

	// FinalHeight is the height of the trimmed calendar sheet. The cut
	// lines on the first and last page mark it.
	FinalHeight float64
}

// Fixed offsets of the A4 layout.
const (
	DaysWidth        = 480.0
	FinalHeight      = 697.0
	daysTopOffset    = 170.0
	titleTopOffset   = 110.0
	imageBottomInset = 110.0
)

// NewLayout centers the grid, title and artwork on a w x h page.
func NewLayout(w, h float64) Layout {
	left := (w - DaysWidth) / 2
	return Layout{
		PageWidth:   w,
		PageHeight:  h,
		DaysWidth:   DaysWidth,
		DaysTopLeft: geom.Pt(left, h-daysTopOffset),
		TitleCenter: geom.Pt(w/2, h-titleTopOffset),
		ImageOrigin: geom.Pt(left, imageBottomInset),
		FinalHeight: FinalHeight,
	}
}

// A4 is the default layout.
func A4() Layout { return NewLayout(surface.A4Width, surface.A4Height) }

// CutLine is a dashed guide across the full page width.
type CutLine struct {
	Width     float64
	LineWidth float64
	Dash      []float64
	Color     ink.CMYK
}

// NewCutLine returns the default thin grey 9/9 dashed cut line.
func NewCutLine(width float64) CutLine {
	return CutLine{
		Width:     width,
		LineWidth: 0.3,
		Dash:      []float64{9, 9},
		Color:     ink.Grey(0.5),
	}
}

// Draw strokes the line at height y and restores solid lines.
func (c CutLine) Draw(s surface.Surface, y float64) {
	s.SetStrokeColor(c.Color)
	s.SetLineWidth(c.LineWidth)
	s.SetDash(c.Dash...)
	s.Line(geom.Pt(0, y), geom.Pt(c.Width, y))
	s.SetDash()
}
