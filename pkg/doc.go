// Package pkg provides the core libraries for pebblecal calendar generation.
//
// # Overview
//
// Pebblecal lays out a printable wall calendar for one year. Every month page
// faces an art page showing pebbles resting on shelves above dashed rule
// lines, and each art page adds one pebble to the picture before it. The
// artwork is drawn from a seeded random source, so a calendar can be rebuilt
// exactly from the seed printed in its report.
//
// # Architecture
//
// The typical data flow through pebblecal:
//
//	Options (year, seed, holidays, month names)
//	         ↓
//	    [holidays] package (resolve bold and italic date sets)
//	         ↓
//	    [art] package (generate, pack and stage the pebble composition)
//	         ↓
//	    [document] package (page sequence: cut line, art + month pages, cut line)
//	         ↓
//	    [sink] package (SVG/PDF/PNG/JSON/report output)
//
// # Quick Start
//
// Build a calendar and write it as SVG pages:
//
//	import (
//	    "github.com/matzehuels/pebblecal/pkg/document"
//	    "github.com/matzehuels/pebblecal/pkg/holidays"
//	    "github.com/matzehuels/pebblecal/pkg/sink"
//	)
//
//	cz, _ := holidays.Lookup("cz")
//	doc, _ := document.New(document.Options{Year: 2026, Seed: 42, Bold: cz})
//	pages, _ := sink.RenderSVG(ctx, doc)
//
// Most callers go through [pipeline] instead, which applies defaults,
// validates options and caches rendered artifacts.
//
// # Main Packages
//
// ## Artwork
//
// [art/pebble] - Pebble generator. A pebble is a closed curve of four cubic
// Bézier segments around jittered zero points on an ellipse.
//
// [art/shelf] - Vertical stack of shelves the pebbles rest on.
//
// [art/pack] - Places pebbles left to right, a fixed number per shelf.
//
// [art/lines] - Dashed background rule lines.
//
// [art] - The composition of lines, shelves and pebbles, rendered in stages.
//
// ## Calendar
//
// [calendar] - Month grids of full weeks, Monday- or Sunday-first, and
// their drawing.
//
// [holidays] - Built-in public holiday sets and TOML holiday files.
//
// [document] - Page sequence, page layout and the text report.
//
// ## Drawing and Output
//
// [surface] - Drawing surface interface with SVG, raster and recording
// implementations.
//
// [sink] - Output encoders. PDF conversion uses rsvg-convert.
//
// [geom], [ink], [random] - Point arithmetic, ink colors and the seeded
// random source.
//
// ## Infrastructure
//
// [pipeline] - Build → render flow shared by every command.
//
// [cache] - File-based artifact cache keyed by input hashes.
//
// [config] - Optional TOML config file.
//
// [errors], [observability], [buildinfo] - Error codes, hooks and version
// information.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/art/...         # Artwork only
//
// PDF tests are skipped when rsvg-convert is not installed.
//
// [art]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/art
// [art/pebble]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/art/pebble
// [art/shelf]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/art/shelf
// [art/pack]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/art/pack
// [art/lines]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/art/lines
// [calendar]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/calendar
// [holidays]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/holidays
// [document]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/document
// [surface]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/surface
// [sink]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/sink
// [geom]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/geom
// [ink]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/ink
// [random]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/random
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pebblecal/pkg/buildinfo
package pkg
