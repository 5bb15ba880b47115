// Package document assembles the calendar pages.
//
// The page sequence is fixed:
//
//  1. a cut line marking the top of the trimmed sheet,
//  2. for each month, an art page showing as many pebbles as the month's
//     number, followed by the month grid,
//  3. a cut line marking the bottom of the trimmed sheet.
//
// Pages are closures over a shared calendar and composition, so a document
// can be rendered onto any number of surfaces and always produces the same
// drawing.
package document

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/pebblecal/pkg/art"
	"github.com/matzehuels/pebblecal/pkg/calendar"
	"github.com/matzehuels/pebblecal/pkg/errors"
	"github.com/matzehuels/pebblecal/pkg/holidays"
	"github.com/matzehuels/pebblecal/pkg/random"
	"github.com/matzehuels/pebblecal/pkg/surface"
)

// Kind identifies what a page shows.
type Kind string

const (
	KindCutLine Kind = "cutline"
	KindArt     Kind = "art"
	KindMonth   Kind = "month"
)

// Page is one page of the document.
type Page struct {
	Kind  Kind
	Stage int        // art pages: pebbles shown
	Month time.Month // month pages
	Draw  func(s surface.Surface)
}

// Options configures New.
type Options struct {
	Year        int
	Seed        uint64
	SundayFirst bool
	MonthNames  []string
	Bold        holidays.Provider
	Italic      holidays.Provider
	Art         art.Options
	Layout      Layout
	Metrics     surface.Metrics
	// BuildID identifies the build in the report. A random ID is used when
	// zero.
	BuildID uuid.UUID
}

// Document is a fully laid out calendar.
type Document struct {
	Year    int
	Seed    uint64
	BuildID uuid.UUID
	Layout  Layout

	Calendar *calendar.Year
	Art      *art.Composition
	Bold     holidays.Set
	Italic   holidays.Set
	Pages    []Page
}

// New lays out the calendar for opts.Year. The artwork is generated from
// opts.Seed, so equal options give equal drawings.
func New(opts Options) (*Document, error) {
	if err := errors.ValidateYear(opts.Year); err != nil {
		return nil, err
	}
	if opts.Layout == (Layout{}) {
		opts.Layout = A4()
	}
	if opts.Art.Pebbles == 0 && opts.Art.PerShelf == 0 {
		opts.Art = art.DefaultOptions()
	}
	if opts.BuildID == uuid.Nil {
		opts.BuildID = uuid.New()
	}

	d := &Document{
		Year:    opts.Year,
		Seed:    opts.Seed,
		BuildID: opts.BuildID,
		Layout:  opts.Layout,
		Bold:    datesOf(opts.Bold, opts.Year),
		Italic:  datesOf(opts.Italic, opts.Year),
	}

	comp, err := art.New(opts.Layout.ImageOrigin, random.New(opts.Seed), opts.Art)
	if err != nil {
		return nil, fmt.Errorf("compose artwork: %w", err)
	}
	d.Art = comp

	d.Calendar = calendar.NewYear(opts.Year, calendar.Options{
		Width:       opts.Layout.DaysWidth,
		SundayFirst: opts.SundayFirst,
		MonthNames:  opts.MonthNames,
		Bold:        d.Bold,
		Italic:      d.Italic,
		Metrics:     opts.Metrics,
	})

	d.Pages = d.pages()
	return d, nil
}

func datesOf(p holidays.Provider, year int) holidays.Set {
	if p == nil {
		return holidays.Set{}
	}
	return p.Dates(year)
}

func (d *Document) pages() []Page {
	l := d.Layout
	cut := NewCutLine(l.PageWidth)

	pages := []Page{{
		Kind: KindCutLine,
		Draw: func(s surface.Surface) { cut.Draw(s, l.PageHeight-l.FinalHeight) },
	}}
	for i, m := range d.Calendar.Months {
		stage := i + 1
		pages = append(pages,
			Page{
				Kind:  KindArt,
				Stage: stage,
				Draw:  func(s surface.Surface) { d.Art.RenderStage(s, stage) },
			},
			Page{
				Kind:  KindMonth,
				Month: m.Number,
				Draw: func(s surface.Surface) {
					m.Draw(s, l.DaysTopLeft, l.TitleCenter, d.Title(m))
				},
			},
		)
	}
	pages = append(pages, Page{
		Kind: KindCutLine,
		Draw: func(s surface.Surface) { cut.Draw(s, l.FinalHeight) },
	})
	return pages
}

// Title is the heading of a month page.
func (d *Document) Title(m *calendar.Month) string {
	return fmt.Sprintf("%s %d", m.Name, d.Year)
}

// Render draws every page onto s, ending each with ShowPage. It stops early
// when ctx is cancelled.
func Render(ctx context.Context, s surface.Surface, doc *Document) error {
	for i, p := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.Draw(s)
		s.ShowPage()
		if err := s.Err(); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "page %d", i+1)
		}
	}
	return nil
}

// ArtPage returns the art page for stage n, clamped to the available stages.
func (d *Document) ArtPage(n int) Page {
	n = max(0, min(n, d.Art.Stages()))
	return Page{
		Kind:  KindArt,
		Stage: n,
		Draw:  func(s surface.Surface) { d.Art.RenderStage(s, n) },
	}
}
