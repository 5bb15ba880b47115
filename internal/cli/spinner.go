package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pebblecal/pkg/observability"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner draws a single status line while a calendar builds. The message
// follows the build through its steps, one render format at a time.
type Spinner struct {
	w      io.Writer
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	message string
	width   int
	started bool
	stopped chan struct{}
	once    sync.Once
}

// newSpinner returns a spinner that draws to w until Stop is called or ctx
// is cancelled.
func newSpinner(ctx context.Context, w io.Writer, message string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		ctx:     ctx,
		cancel:  cancel,
		message: message,
		stopped: make(chan struct{}),
	}
}

// Start begins drawing in a background goroutine.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for i := 0; ; i++ {
			s.draw(spinnerFrames[i%len(spinnerFrames)])
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
			}
		}
	}()
}

// Update replaces the message shown next to the spinner.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Message returns the message currently shown.
func (s *Spinner) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Stop clears the status line. It is safe to call more than once, and
// before Start.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()
		if started {
			<-s.stopped
		}
	})
}

// StopWithError stops the spinner and leaves an error line in its place.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	fmt.Fprintln(s.w, styleIconError.Render(iconError)+" "+message)
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := styleIconSpinner.Render(frame) + " " + StyleDim.Render(s.message)
	// Pad over the tail of a longer message drawn before.
	pad := s.width - len(s.message)
	if pad < 0 {
		pad = 0
	}
	s.width = max(s.width, len(s.message))
	fmt.Fprintf(s.w, "\r%s%s", line, strings.Repeat(" ", pad))
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width+2))
}

// =============================================================================
// Build Progress
// =============================================================================

// buildProgress turns pipeline events into spinner messages: one per
// rendered format and one while rsvg-convert runs.
type buildProgress struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks

	spinner *Spinner
	logger  *log.Logger
}

func (p *buildProgress) OnBuildStart(_ context.Context, year int, seed uint64) {
	p.spinner.Update(fmt.Sprintf("Growing pebbles for %d (seed %d)...", year, seed))
}

func (p *buildProgress) OnCacheHit(_ context.Context, keyType string) {
	if format, ok := strings.CutPrefix(keyType, "artifact:"); ok {
		p.spinner.Update(fmt.Sprintf("Loaded %s from cache", format))
	}
}

func (p *buildProgress) OnCacheMiss(_ context.Context, keyType string) {
	if format, ok := strings.CutPrefix(keyType, "artifact:"); ok {
		p.spinner.Update(fmt.Sprintf("Rendering %s...", format))
	}
}

func (p *buildProgress) OnConvertStart(_ context.Context, tool string, pages int) {
	p.spinner.Update(fmt.Sprintf("Converting %d pages with %s...", pages, tool))
}

func (p *buildProgress) OnConvertComplete(_ context.Context, tool string, size int, d time.Duration, err error) {
	if err != nil {
		p.logger.Debug("conversion failed", "tool", tool, "err", err)
		return
	}
	p.logger.Debug("converted", "tool", tool, "bytes", size, "duration", d.Round(time.Millisecond))
}

// trackBuild routes pipeline, cache and converter events to s while fn
// runs, then restores the hooks registered before.
func trackBuild(s *Spinner, logger *log.Logger, fn func() error) error {
	p := &buildProgress{spinner: s, logger: logger}

	prevPipeline, prevCache, prevConvert := observability.Pipeline(), observability.Cache(), observability.Convert()
	observability.SetPipelineHooks(p)
	observability.SetCacheHooks(p)
	observability.SetConvertHooks(p)
	defer func() {
		observability.SetPipelineHooks(prevPipeline)
		observability.SetCacheHooks(prevCache)
		observability.SetConvertHooks(prevConvert)
	}()

	return fn()
}
