// Package observability provides hooks for metrics, tracing, and logging.
//
// Consumers register hooks at startup to receive events about calendar
// builds, rendering, cache use and calls to external converters. Libraries
// emit events through the package-level accessors; when nothing is
// registered the no-op defaults absorb them.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnBuildStart(ctx, year, seed)
//	// ... lay out the document ...
//	observability.Pipeline().OnBuildComplete(ctx, year, pages, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the calendar pipeline.
type PipelineHooks interface {
	// Build events: laying out the calendar and generating the artwork.
	OnBuildStart(ctx context.Context, year int, seed uint64)
	OnBuildComplete(ctx context.Context, year, pages int, duration time.Duration, err error)

	// Render events: encoding the document into output formats.
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Converter Hooks
// =============================================================================

// ConvertHooks receives events around external conversion tools such as
// rsvg-convert.
type ConvertHooks interface {
	OnConvertStart(ctx context.Context, tool string, pages int)
	OnConvertComplete(ctx context.Context, tool string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnBuildStart(context.Context, int, uint64)                        {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, int, int, time.Duration, error)  {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopConvertHooks is a no-op implementation of ConvertHooks.
type NoopConvertHooks struct{}

func (NoopConvertHooks) OnConvertStart(context.Context, string, int)                          {}
func (NoopConvertHooks) OnConvertComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	convertHooks  ConvertHooks  = NoopConvertHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetConvertHooks registers custom converter hooks.
func SetConvertHooks(h ConvertHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		convertHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Convert returns the registered converter hooks.
func Convert() ConvertHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return convertHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	convertHooks = NoopConvertHooks{}
}
