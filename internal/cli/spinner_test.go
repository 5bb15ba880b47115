package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/pebblecal/pkg/cache"
	"github.com/matzehuels/pebblecal/pkg/observability"
	"github.com/matzehuels/pebblecal/pkg/pipeline"
)

func TestSpinnerShowsUpdatedMessage(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(t.Context(), &buf, "Building 2026 calendar...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Update("Rendering pdf...")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	for _, want := range []string{"Building 2026 calendar...", "Rendering pdf..."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%q", want, out)
		}
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("status line not cleared: %q", out)
	}
}

func TestSpinnerStop(t *testing.T) {
	t.Run("before start", func(t *testing.T) {
		s := newSpinner(t.Context(), io.Discard, "idle")
		s.Stop()
		s.Stop()
	})

	t.Run("context cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		s := newSpinner(ctx, io.Discard, "Rendering png...")
		s.Start()
		cancel()

		done := make(chan struct{})
		go func() {
			s.Stop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Stop() blocked after the context was cancelled")
		}
	})
}

func TestSpinnerStopWithError(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(t.Context(), &buf, "Converting 26 pages with rsvg-convert...")
	s.Start()
	s.StopWithError("Building 2026 failed")

	if !strings.Contains(buf.String(), "Building 2026 failed") {
		t.Errorf("error line missing: %q", buf.String())
	}
}

func TestBuildProgressMessages(t *testing.T) {
	var logs bytes.Buffer
	s := newSpinner(t.Context(), io.Discard, "Building 2026 calendar...")
	p := &buildProgress{spinner: s, logger: newLogger(&logs, LogDebug)}
	ctx := t.Context()

	tests := []struct {
		name string
		emit func()
		want string
	}{
		{"build start", func() { p.OnBuildStart(ctx, 2026, 42) }, "Growing pebbles for 2026 (seed 42)..."},
		{"render", func() { p.OnCacheMiss(ctx, "artifact:pdf") }, "Rendering pdf..."},
		{"convert", func() { p.OnConvertStart(ctx, "rsvg-convert", 26) }, "Converting 26 pages with rsvg-convert..."},
		{"cached", func() { p.OnCacheHit(ctx, "artifact:svg") }, "Loaded svg from cache"},
		{"other key types ignored", func() { p.OnCacheMiss(ctx, "document") }, "Loaded svg from cache"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.emit()
			if got := s.Message(); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}

	p.OnConvertComplete(ctx, "rsvg-convert", 4096, 1500*time.Millisecond, nil)
	p.OnConvertComplete(ctx, "rsvg-convert", 0, time.Second, errors.New("exit status 1"))
	out := logs.String()
	for _, want := range []string{"converted", "bytes=4096", "conversion failed", "exit status 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestTrackBuild(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := pipeline.NewRunner(fc, newKeyer(), newLogger(io.Discard, LogInfo))
	seed := uint64(9)
	opts := pipeline.Options{Year: 2026, Seed: &seed, Formats: []string{"json"}}

	run := func() string {
		t.Helper()
		s := newSpinner(t.Context(), io.Discard, "Building 2026 calendar...")
		err := trackBuild(s, newLogger(io.Discard, LogInfo), func() error {
			_, err := runner.Execute(t.Context(), opts)
			return err
		})
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		return s.Message()
	}

	if got := run(); got != "Rendering json..." {
		t.Errorf("first build ended on %q", got)
	}
	if got := run(); got != "Loaded json from cache" {
		t.Errorf("second build ended on %q", got)
	}

	if _, ok := observability.Cache().(*buildProgress); ok {
		t.Error("cache hooks not restored after the build")
	}
	if _, ok := observability.Convert().(*buildProgress); ok {
		t.Error("convert hooks not restored after the build")
	}
}

func TestTrackBuildReturnsError(t *testing.T) {
	s := newSpinner(t.Context(), io.Discard, "Building 2026 calendar...")
	want := errors.New("render failed")
	if err := trackBuild(s, newLogger(io.Discard, LogInfo), func() error { return want }); err != want {
		t.Errorf("trackBuild() = %v, want %v", err, want)
	}
}
