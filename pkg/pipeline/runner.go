package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/pebblecal/pkg/cache"
	"github.com/matzehuels/pebblecal/pkg/document"
	"github.com/matzehuels/pebblecal/pkg/holidays"
	"github.com/matzehuels/pebblecal/pkg/observability"
)

// buildNamespace scopes build IDs derived from document hashes.
var buildNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/pebblecal/build"))

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Build
	buildStart := time.Now()
	doc, hash, err := r.Build(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Document = doc
	result.DocumentHash = hash
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Pages = len(doc.Pages)
	result.Stats.Pebbles = len(doc.Art.Pebbles)

	r.Logger.Info("built calendar",
		"year", doc.Year,
		"seed", doc.Seed,
		"pages", result.Stats.Pages,
		"duration", result.Stats.BuildTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, hits, err := r.RenderWithCacheInfo(ctx, doc, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	for _, files := range artifacts {
		result.Stats.Files += len(files)
	}
	result.CacheInfo.Hits = hits
	result.CacheInfo.RenderHit = len(hits) == len(opts.Formats)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"files", result.Stats.Files,
		"cached", len(hits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build resolves the holiday sources and lays out the document. It returns
// the document together with the hash of its inputs, which also seeds the
// document's build ID so equal inputs report equal builds.
func (r *Runner) Build(ctx context.Context, opts Options) (doc *document.Document, hash string, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, "", err
	}
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, opts.Year, opts.SeedValue())
	start := time.Now()
	defer func() {
		pages := 0
		if doc != nil {
			pages = len(doc.Pages)
		}
		hooks.OnBuildComplete(ctx, opts.Year, pages, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	bold, err := holidays.Resolve(opts.Bold...)
	if err != nil {
		return nil, "", fmt.Errorf("bold dates: %w", err)
	}
	italic, err := holidays.Resolve(opts.Italic...)
	if err != nil {
		return nil, "", fmt.Errorf("italic dates: %w", err)
	}
	boldSet, italicSet := bold.Dates(opts.Year), italic.Dates(opts.Year)
	r.Logger.Debug("resolved holidays",
		"bold", len(boldSet),
		"italic", len(italicSet))

	hash = r.Keyer.DocumentKey(opts.DocumentKeyOpts(keyDates(boldSet), keyDates(italicSet)))

	doc, err = document.New(document.Options{
		Year:        opts.Year,
		Seed:        opts.SeedValue(),
		SundayFirst: opts.SundayFirst,
		MonthNames:  opts.MonthNames,
		Bold:        bold,
		Italic:      italic,
		BuildID:     uuid.NewSHA1(buildNamespace, []byte(hash)),
	})
	if err != nil {
		return nil, "", err
	}
	return doc, hash, nil
}

// keyDates flattens a holiday set into stable cache key material.
func keyDates(s holidays.Set) []string {
	dates := s.Sorted()
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String() + " " + s[d]
	}
	return out
}

// RenderWithCacheInfo encodes doc into every requested format, serving
// formats from the cache where possible. It returns the artifacts and the
// formats that were cache hits.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc *document.Document, hash string, opts Options) (map[string][][]byte, []string, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][][]byte, len(opts.Formats))
	var hits []string
	var err error
	for _, format := range opts.Formats {
		var files [][]byte
		var hit bool
		files, hit, err = r.renderFormat(ctx, doc, hash, format, opts)
		if err != nil {
			err = fmt.Errorf("%s: %w", format, err)
			break
		}
		artifacts[format] = files
		if hit {
			hits = append(hits, format)
		}
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, nil, err
	}
	return artifacts, hits, nil
}

func (r *Runner) renderFormat(ctx context.Context, doc *document.Document, hash, format string, opts Options) ([][]byte, bool, error) {
	key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
	keyType := "artifact:" + format

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if hit {
			files, err := decodeFiles(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, keyType)
				r.Logger.Debug("cache hit", "format", format)
				return files, true, nil
			}
			r.Logger.Warn("discarding cache entry", "format", format, "err", err)
		}
	}
	observability.Cache().OnCacheMiss(ctx, keyType)

	start := time.Now()
	files, err := RenderFormat(ctx, doc, format, opts.Scale)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Debug("rendered", "format", format, "files", len(files), "duration", time.Since(start))

	if data, err := encodeFiles(files); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyType, len(data))
		}
	}
	return files, false, nil
}

// Preview builds the document and renders the art page at stage as SVG or
// PNG. Previews are not cached.
func (r *Runner) Preview(ctx context.Context, opts Options, stage int, format string) ([]byte, *document.Document, error) {
	doc, _, err := r.Build(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("build: %w", err)
	}
	page := doc.ArtPage(stage)
	data, err := RenderPage(doc, page, format, opts.Scale)
	if err != nil {
		return nil, nil, err
	}
	r.Logger.Debug("rendered preview", "stage", page.Stage, "format", format, "bytes", len(data))
	return data, doc, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
