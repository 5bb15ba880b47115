// Package sink encodes a laid-out calendar into output formats.
//
// # Formats
//
//   - SVG: one standalone SVG document per page ([RenderSVG])
//   - PDF: a single multi-page print file ([RenderPDF], requires rsvg-convert)
//   - PNG: one bitmap per page, rasterized in-process ([RenderPNG])
//   - JSON: the artwork and styled dates as data ([RenderJSON])
//   - TXT: the companion report ([RenderReport])
//
// PDF output is produced by writing the SVG pages to a scratch directory and
// converting them in one rsvg-convert call, which concatenates the inputs into
// pages of a single PDF. rsvg-convert comes with librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// Every renderer takes a context and stops between pages when it is
// cancelled.
package sink

import (
	"strings"

	"github.com/matzehuels/pebblecal/pkg/errors"
)

// Format names an output format.
type Format string

const (
	FormatPDF    Format = "pdf"
	FormatSVG    Format = "svg"
	FormatPNG    Format = "png"
	FormatJSON   Format = "json"
	FormatReport Format = "txt"
)

// Formats lists every supported format in the order they are rendered.
var Formats = []Format{FormatPDF, FormatSVG, FormatPNG, FormatJSON, FormatReport}

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (valid: pdf, svg, png, json, txt)", s)
}

// Ext is the file extension, without dot.
func (f Format) Ext() string { return string(f) }

// Paged reports whether the format yields one file per page.
func (f Format) Paged() bool { return f == FormatSVG || f == FormatPNG }
