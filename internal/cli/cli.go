// Package cli implements the pebblecal command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pebblecal/pkg/buildinfo"
	"github.com/matzehuels/pebblecal/pkg/cache"
	"github.com/matzehuels/pebblecal/pkg/config"
	"github.com/matzehuels/pebblecal/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pebblecal"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Pebblecal prints wall calendars with procedurally grown pebble art",
		Long: `Pebblecal lays out a printable twelve-month calendar. Each month faces a
picture of pebbles resting on shelves; one more pebble appears every month.
The artwork is generated from a seed, so any calendar can be rebuilt exactly
from the seed printed in its report.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.holidaysCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped by
// release so a new version never serves an older drawing.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	keyer := newKeyer()
	return pipeline.NewRunner(cache, keyer, c.Logger), nil
}

func newKeyer() cache.Keyer {
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/pebblecal/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// calendarFlags are the flags shared by every command that builds a
// calendar.
type calendarFlags struct {
	config      string
	year        int
	seed        uint64
	sundayFirst bool
	monthNames  []string
	bold        []string
	italic      []string
}

func (f *calendarFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.config, "config", "", "config file (default: $XDG_CONFIG_HOME/pebblecal/config.toml)")
	flags.IntVarP(&f.year, "year", "y", 0, "calendar year (default: this year, or next year from October)")
	flags.Uint64VarP(&f.seed, "seed", "s", 0, "artwork seed (default: random)")
	flags.BoolVar(&f.sundayFirst, "sunday-first", false, "start weeks on Sunday")
	flags.StringSliceVar(&f.monthNames, "month-names", nil, "twelve comma-separated month names")
	flags.StringSliceVar(&f.bold, "bold", nil, "holiday codes or TOML files for bold dates (default: cz)")
	flags.StringSliceVar(&f.italic, "italic", nil, "holiday codes or TOML files for italic dates (default: sk)")

	_ = cmd.RegisterFlagCompletionFunc("bold", completeHolidayCodes)
	_ = cmd.RegisterFlagCompletionFunc("italic", completeHolidayCodes)
}

// options merges the config file and the flags into pipeline options.
// Flags set on the command line override the file.
func (f *calendarFlags) options(cmd *cobra.Command) (pipeline.Options, *config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return pipeline.Options{}, nil, err
	}

	var opts pipeline.Options
	cfg.Apply(&opts)

	flags := cmd.Flags()
	if flags.Changed("year") {
		opts.Year = f.year
	}
	if flags.Changed("seed") {
		seed := f.seed
		opts.Seed = &seed
	}
	if flags.Changed("sunday-first") {
		opts.SundayFirst = f.sundayFirst
	}
	if flags.Changed("month-names") {
		opts.MonthNames = f.monthNames
	}
	if flags.Changed("bold") {
		opts.Bold = nonEmpty(f.bold)
	}
	if flags.Changed("italic") {
		opts.Italic = nonEmpty(f.italic)
	}
	return opts, cfg, nil
}

// nonEmpty drops blank entries, so --bold "" selects no dates. The result
// is never nil.
func nonEmpty(refs []string) []string {
	out := []string{}
	for _, r := range refs {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// parseFormats parses a comma-separated format string into a slice.
// An empty string leaves the pipeline default in place.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
