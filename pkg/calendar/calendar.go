// Package calendar models a year of month grids and draws them.
//
// Each month is a list of full weeks. Weeks start on Monday or Sunday and are
// padded with days from the neighbouring months, the way a wall calendar
// shows them. Days are styled from two date sets: dates in Bold are drawn in
// a bold face, dates in Italic in an italic face, dates in both in bold
// italic.
package calendar

import (
	"time"

	"github.com/matzehuels/pebblecal/pkg/surface"
)

// Layout ratios, relative to the day square size.
const (
	DefaultGapRatio        = 0.12
	DefaultRoundingRatio   = 0.15
	DefaultTextMarginRatio = 0.1
)

// Line widths of the day squares.
const (
	WeekendLineWidth = 1.2
	WeekdayLineWidth = 0.6
)

// Font sizes.
const (
	OtherMonthFontSize   = 12.0
	CurrentMonthFontSize = 16.0
	TitleFontSize        = 40.0
)

// MonthNames are the default English month titles.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DateSet reports membership of a date.
type DateSet interface {
	Has(d Date) bool
}

type noDates struct{}

func (noDates) Has(Date) bool { return false }

// Options configures NewYear.
type Options struct {
	// Width of the day grid in points.
	Width       float64
	SundayFirst bool
	// MonthNames overrides the titles; it must hold 12 entries.
	MonthNames []string
	Bold       DateSet
	Italic     DateSet
	Metrics    surface.Metrics

	GapRatio        float64
	RoundingRatio   float64
	TextMarginRatio float64
}

func (o *Options) setDefaults() {
	if len(o.MonthNames) != 12 {
		o.MonthNames = MonthNames
	}
	if o.Bold == nil {
		o.Bold = noDates{}
	}
	if o.Italic == nil {
		o.Italic = noDates{}
	}
	if o.Metrics == nil {
		o.Metrics = surface.DefaultMetrics
	}
	if o.GapRatio == 0 {
		o.GapRatio = DefaultGapRatio
	}
	if o.RoundingRatio == 0 {
		o.RoundingRatio = DefaultRoundingRatio
	}
	if o.TextMarginRatio == 0 {
		o.TextMarginRatio = DefaultTextMarginRatio
	}
}

// Year is twelve months of one calendar year.
type Year struct {
	Year   int
	Months [12]*Month
}

// NewYear lays out every month of year.
func NewYear(year int, opts Options) *Year {
	opts.setDefaults()
	y := &Year{Year: year}
	for i := range y.Months {
		y.Months[i] = newMonth(year, time.Month(i+1), opts)
	}
	return y
}

// Month returns the month m (1-based).
func (y *Year) Month(m time.Month) *Month { return y.Months[m-1] }

// Day is one cell of a month grid.
type Day struct {
	Date    Date
	Column  int
	Row     int
	InMonth bool
	Style   surface.Style
}

// LineWidth is the square outline width.
func (d Day) LineWidth() float64 {
	if d.Date.Weekend() {
		return WeekendLineWidth
	}
	return WeekdayLineWidth
}

// Face is the font face of the day number.
func (d Day) Face() surface.Face {
	size := OtherMonthFontSize
	if d.InMonth {
		size = CurrentMonthFontSize
	}
	return surface.Face{Style: d.Style, Size: size}
}

// Month is a grid of full weeks.
type Month struct {
	Number time.Month
	Name   string
	Weeks  [][7]Day

	opts Options
}

func newMonth(year int, m time.Month, opts Options) *Month {
	month := &Month{Number: m, Name: opts.MonthNames[m-1], opts: opts}

	first := D(year, m, 1)
	start := first.AddDays(-Column(first.Weekday(), opts.SundayFirst))
	last := DateOf(first.Time().AddDate(0, 1, -1))

	for row, d := 0, start; !last.Before(d); row++ {
		var week [7]Day
		for col := range week {
			week[col] = Day{
				Date:    d,
				Column:  col,
				Row:     row,
				InMonth: d.Month == m,
				Style:   styleOf(d, opts),
			}
			d = d.AddDays(1)
		}
		month.Weeks = append(month.Weeks, week)
	}
	return month
}

// Column returns the grid column of a weekday.
func Column(wd time.Weekday, sundayFirst bool) int {
	if sundayFirst {
		return int(wd)
	}
	return (int(wd) + 6) % 7
}

func styleOf(d Date, opts Options) surface.Style {
	bold, italic := opts.Bold.Has(d), opts.Italic.Has(d)
	switch {
	case bold && italic:
		return surface.BoldItalic
	case italic:
		return surface.Italic
	case bold:
		return surface.Bold
	default:
		return surface.Regular
	}
}

// SquareSize is the side of a day square.
func (m *Month) SquareSize() float64 {
	return m.opts.Width / (7 + 6*m.opts.GapRatio)
}

// GapSize is the space between neighbouring squares.
func (m *Month) GapSize() float64 {
	return (m.opts.Width - 7*m.SquareSize()) / 6
}

// Days returns every cell in row-major order.
func (m *Month) Days() []Day {
	days := make([]Day, 0, 7*len(m.Weeks))
	for _, w := range m.Weeks {
		days = append(days, w[:]...)
	}
	return days
}
