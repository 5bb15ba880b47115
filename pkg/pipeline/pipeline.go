// Package pipeline provides the build pipeline for pebblecal.
//
// This package implements the complete build → render flow shared by every
// CLI command. By centralizing it, option defaults, cache keys and logging
// stay consistent between "build", "preview" and "report".
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: resolve holiday sources, lay out the calendar and grow the
//     pebble artwork from the seed ([document.New])
//  2. Render: encode the document into each requested format (PDF, SVG, PNG,
//     JSON, report text)
//
// Rendered artifacts are cached by a hash of everything that determines the
// drawing, so rebuilding a calendar with the same seed is instant.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	seed := uint64(1234)
//	opts := pipeline.Options{
//	    Year:    2025,
//	    Seed:    &seed,
//	    Bold:    []string{"cz"},
//	    Italic:  []string{"sk"},
//	    Formats: []string{"pdf", "txt"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf := result.Artifacts["pdf"][0]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pebblecal/pkg/cache"
	"github.com/matzehuels/pebblecal/pkg/document"
	"github.com/matzehuels/pebblecal/pkg/errors"
	"github.com/matzehuels/pebblecal/pkg/random"
	"github.com/matzehuels/pebblecal/pkg/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for every command
// =============================================================================

const (
	// DefaultScale is the PNG resolution in pixels per point.
	DefaultScale = sink.DefaultScale

	// rolloverMonth is the first month in which the default year becomes
	// the following one. Calendars are printed ahead of the year they show.
	rolloverMonth = time.October
)

var (
	// DefaultFormats are rendered when no format is requested: the print
	// file and its report.
	DefaultFormats = []string{string(sink.FormatPDF), string(sink.FormatReport)}

	// DefaultBold marks Czech public holidays in bold.
	DefaultBold = []string{"cz"}

	// DefaultItalic marks Slovak public holidays in italics.
	DefaultItalic = []string{"sk"}
)

// DefaultYear is the year a calendar printed at now should show.
func DefaultYear(now time.Time) int {
	if now.Month() >= rolloverMonth {
		return now.Year() + 1
	}
	return now.Year()
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a calendar build.
// This struct supports JSON serialization so runs can be logged and replayed.
type Options struct {
	// Build options
	Year        int      `json:"year,omitempty"`
	Seed        *uint64  `json:"seed,omitempty"` // nil draws a fresh seed
	SundayFirst bool     `json:"sunday_first,omitempty"`
	MonthNames  []string `json:"month_names,omitempty"`
	Bold        []string `json:"bold,omitempty"`   // holiday codes or TOML files
	Italic      []string `json:"italic,omitempty"` // holiday codes or TOML files

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Refresh bool     `json:"refresh,omitempty"` // ignore cached artifacts

	// Runtime options (not serialized)
	Logger *log.Logger      `json:"-"`
	Now    func() time.Time `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the laid-out calendar.
	Document *document.Document

	// DocumentHash is the content hash of the build inputs.
	DocumentHash string

	// Artifacts holds the encoded files keyed by format. Paged formats (SVG,
	// PNG) have one entry per page; the others have exactly one.
	Artifacts map[string][][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which formats came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Pages      int
	Pebbles    int
	Files      int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	Hits      []string // Formats served from cache
	RenderHit bool     // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if _, err := sink.ParseFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateScale checks that a PNG scale is usable.
func ValidateScale(scale float64) error {
	if scale <= 0 || scale > 16 {
		return errors.New(errors.ErrCodeInvalidInput, "scale %g out of range (0, 16]", scale)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. This method is idempotent: a drawn seed is kept across calls.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetBuildDefaults()
	if err := errors.ValidateYear(o.Year); err != nil {
		return err
	}
	if len(o.MonthNames) > 0 {
		if err := errors.ValidateMonthNames(o.MonthNames); err != nil {
			return err
		}
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetBuildDefaults fills in the year, seed and holiday sources.
func (o *Options) SetBuildDefaults() {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Year == 0 {
		o.Year = DefaultYear(o.Now())
	}
	if o.Seed == nil {
		seed := random.Seed()
		o.Seed = &seed
	}
	if o.Bold == nil {
		o.Bold = slices.Clone(DefaultBold)
	}
	if o.Italic == nil {
		o.Italic = slices.Clone(DefaultItalic)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender normalizes the format list and validates render options.
// Formats are lower-cased and deduplicated, keeping their first position.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	formats := make([]string, 0, len(o.Formats))
	for _, name := range o.Formats {
		f, err := sink.ParseFormat(name)
		if err != nil {
			return err
		}
		if !slices.Contains(formats, string(f)) {
			formats = append(formats, string(f))
		}
	}
	o.Formats = formats
	return ValidateScale(o.Scale)
}

// SeedValue returns the seed, or 0 before defaults are applied.
func (o *Options) SeedValue() uint64 {
	if o.Seed == nil {
		return 0
	}
	return *o.Seed
}

// DocumentKeyOpts returns cache key options for a build. Holiday sources
// are keyed by the dates they produce, so editing a holiday file
// invalidates cached artifacts.
func (o *Options) DocumentKeyOpts(bold, italic []string) cache.DocumentKeyOpts {
	return cache.DocumentKeyOpts{
		Year:        o.Year,
		Seed:        o.SeedValue(),
		SundayFirst: o.SundayFirst,
		MonthNames:  o.MonthNames,
		Bold:        bold,
		Italic:      italic,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	if format == string(sink.FormatPNG) {
		opts.Scale = o.Scale
	}
	return opts
}
