// Package config loads pebblecal's optional TOML configuration file.
//
// A config file holds the options a user wants on every build, typically
// localized month names and the holiday sources for bold and italic dates:
//
//	year = 2025
//	sunday_first = false
//	month_names = ["Január", "Február", "Marec", "Apríl", "Máj", "Jún",
//	               "Júl", "August", "September", "Október", "November", "December"]
//	bold = ["cz"]
//	italic = ["sk", "~/family-birthdays.toml"]
//	formats = ["pdf", "txt"]
//	output = "calendar"
//
// Command-line flags override values from the file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pebblecal/pkg/errors"
	"github.com/matzehuels/pebblecal/pkg/holidays"
	"github.com/matzehuels/pebblecal/pkg/pipeline"
)

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Config mirrors the config file. Unset fields are nil or zero and leave the
// pipeline defaults in place.
type Config struct {
	Year        int      `toml:"year"`
	Seed        *uint64  `toml:"seed"`
	SundayFirst *bool    `toml:"sunday_first"`
	MonthNames  []string `toml:"month_names"`
	Bold        []string `toml:"bold"`
	Italic      []string `toml:"italic"`
	Formats     []string `toml:"formats"`
	Scale       float64  `toml:"scale"`
	Output      string   `toml:"output"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

// DefaultPath returns $XDG_CONFIG_HOME/pebblecal/config.toml, falling back
// to the platform config directory.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "pebblecal", FileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pebblecal", FileName), nil
}

// Load reads the config at path. An empty path loads the default location,
// where a missing file yields an empty Config; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return &Config{}, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return &Config{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	c.Path = path
	c.Bold = resolvePaths(c.Bold, filepath.Dir(path))
	c.Italic = resolvePaths(c.Italic, filepath.Dir(path))
	return c, nil
}

// Parse decodes config TOML. Unknown keys are rejected so typos do not pass
// silently.
func Parse(data []byte) (*Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if len(c.MonthNames) > 0 {
		if err := errors.ValidateMonthNames(c.MonthNames); err != nil {
			return nil, err
		}
	}
	if err := pipeline.ValidateFormats(c.Formats); err != nil {
		return nil, err
	}
	if c.Scale != 0 {
		if err := pipeline.ValidateScale(c.Scale); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// resolvePaths makes holiday file references relative to the config file's
// directory and expands a leading ~. Built-in codes are left alone.
func resolvePaths(refs []string, dir string) []string {
	if refs == nil {
		return nil
	}
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = ref
		if !holidays.IsFile(ref) {
			continue
		}
		if rest, ok := strings.CutPrefix(ref, "~/"); ok {
			if home, err := os.UserHomeDir(); err == nil {
				out[i] = filepath.Join(home, rest)
			}
			continue
		}
		if !filepath.IsAbs(ref) {
			out[i] = filepath.Join(dir, ref)
		}
	}
	return out
}

// Apply copies the set fields into opts. Fields already set in opts win, so
// callers apply flags first.
func (c *Config) Apply(opts *pipeline.Options) {
	if opts.Year == 0 {
		opts.Year = c.Year
	}
	if opts.Seed == nil && c.Seed != nil {
		seed := *c.Seed
		opts.Seed = &seed
	}
	if c.SundayFirst != nil && !opts.SundayFirst {
		opts.SundayFirst = *c.SundayFirst
	}
	if opts.MonthNames == nil {
		opts.MonthNames = c.MonthNames
	}
	if opts.Bold == nil {
		opts.Bold = c.Bold
	}
	if opts.Italic == nil {
		opts.Italic = c.Italic
	}
	if len(opts.Formats) == 0 {
		opts.Formats = c.Formats
	}
	if opts.Scale == 0 {
		opts.Scale = c.Scale
	}
}
