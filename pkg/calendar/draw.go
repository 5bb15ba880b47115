package calendar

import (
	"strconv"

	"github.com/matzehuels/pebblecal/pkg/geom"
	"github.com/matzehuels/pebblecal/pkg/ink"
	"github.com/matzehuels/pebblecal/pkg/surface"
)

// Draw draws the title centered on titleCenter and the day grid with its
// top-left corner at daysTopLeft.
func (m *Month) Draw(s surface.Surface, daysTopLeft, titleCenter geom.Point, title string) {
	m.DrawTitle(s, titleCenter, title)
	m.DrawDays(s, daysTopLeft)
}

// DrawTitle centers title horizontally on c and vertically on half the
// ascent.
func (m *Month) DrawTitle(s surface.Surface, c geom.Point, title string) {
	face := surface.Face{Style: surface.Regular, Size: TitleFontSize}
	w := m.opts.Metrics.Width(title, face)
	a := m.opts.Metrics.Ascent(face)

	s.SetFillColor(ink.Black)
	s.Text(title, face, geom.Pt(c.X-w/2, c.Y-a/2))
}

// DrawDays draws every day of the grid.
func (m *Month) DrawDays(s surface.Surface, topLeft geom.Point) {
	for _, d := range m.Days() {
		m.drawDay(s, d, m.SquareOrigin(topLeft, d))
	}
}

// SquareOrigin is the lower-left corner of d's square.
func (m *Month) SquareOrigin(topLeft geom.Point, d Day) geom.Point {
	size, step := m.SquareSize(), m.SquareSize()+m.GapSize()
	return geom.Pt(
		topLeft.X+float64(d.Column)*step,
		topLeft.Y-size-float64(d.Row)*step,
	)
}

func (m *Month) drawDay(s surface.Surface, d Day, at geom.Point) {
	size := m.SquareSize()
	face := d.Face()
	text := strconv.Itoa(d.Date.Day)
	w := m.opts.Metrics.Width(text, face)
	a := m.opts.Metrics.Ascent(face)

	var p geom.Point
	if d.InMonth {
		margin := m.opts.TextMarginRatio * size
		p = geom.Pt(at.X+margin, at.Y+size-margin-a)
	} else {
		p = geom.Pt(at.X+(size-w)/2, at.Y+(size-a)/2)
	}
	s.SetFillColor(ink.Black)
	s.Text(text, face, p)

	if d.InMonth {
		s.SetLineWidth(d.LineWidth())
		s.SetStrokeColor(ink.Black)
		s.RoundRect(at.X, at.Y, size, size, size*m.opts.RoundingRatio)
	}
}
