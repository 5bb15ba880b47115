package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger writes leveled log lines to w with short wall-clock timestamps
// such as "14:32:01.45". Debug output is enabled with --verbose.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one step of a command, such as writing the artifacts of
// a build.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with keyvals and the time taken, rounded to milliseconds.
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "took", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type loggerKey struct{}

// withLogger attaches the command logger to ctx. The root command does
// this before any subcommand runs.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when a command runs outside the root command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
