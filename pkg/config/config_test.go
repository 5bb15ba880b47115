package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/pebblecal/pkg/errors"
	"github.com/matzehuels/pebblecal/pkg/pipeline"
)

const sample = `
year = 2025
seed = 1234
sunday_first = true
bold = ["cz"]
italic = ["sk", "family.toml"]
formats = ["svg"]
scale = 3.0
output = "out/cal"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, sample)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if c.Year != 2025 || c.Seed == nil || *c.Seed != 1234 {
		t.Errorf("year, seed = %d, %v", c.Year, c.Seed)
	}
	if c.SundayFirst == nil || !*c.SundayFirst {
		t.Error("sunday_first not read")
	}
	if c.Output != "out/cal" || c.Scale != 3 {
		t.Errorf("output, scale = %q, %g", c.Output, c.Scale)
	}
	if c.Path != path {
		t.Errorf("Path = %q, want %q", c.Path, path)
	}
	wantItalic := []string{"sk", filepath.Join(filepath.Dir(path), "family.toml")}
	if !slices.Equal(c.Italic, wantItalic) {
		t.Errorf("Italic = %v, want %v", c.Italic, wantItalic)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("explicit missing config error = %v, want FILE_NOT_FOUND", err)
	}

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatalf("default missing config error: %v", err)
	}
	if c.Path != "" || c.Year != 0 {
		t.Errorf("default missing config = %+v, want empty", c)
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "pebblecal", FileName); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "year = "},
		{"unknown key", "colour = \"red\""},
		{"month names", "month_names = [\"Jan\", \"Feb\"]"},
		{"wrong type", "year = \"soon\""},
		{"unknown format", "formats = [\"pdf\", \"gif\"]"},
		{"scale", "scale = -1.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func TestApply(t *testing.T) {
	c, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}

	flagSeed := uint64(9)
	opts := pipeline.Options{Seed: &flagSeed, Formats: []string{"png"}}
	c.Apply(&opts)

	if opts.Year != 2025 {
		t.Errorf("Year = %d, want 2025 from config", opts.Year)
	}
	if *opts.Seed != 9 {
		t.Errorf("Seed = %d, flag value should win", *opts.Seed)
	}
	if !opts.SundayFirst {
		t.Error("SundayFirst should come from config")
	}
	if !slices.Equal(opts.Formats, []string{"png"}) {
		t.Errorf("Formats = %v, flag value should win", opts.Formats)
	}
	if !slices.Equal(opts.Bold, []string{"cz"}) {
		t.Errorf("Bold = %v", opts.Bold)
	}
	if opts.Scale != 3 {
		t.Errorf("Scale = %g, want 3", opts.Scale)
	}
}

func TestLoadExample(t *testing.T) {
	path := filepath.Join("..", "..", "examples", "config.toml")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}

	var opts pipeline.Options
	c.Apply(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("example config does not validate: %v", err)
	}
	if len(opts.MonthNames) != 12 || opts.MonthNames[0] != "Január" {
		t.Errorf("MonthNames = %v", opts.MonthNames)
	}
	want := filepath.Join(filepath.Dir(path), "family.toml")
	if !slices.Equal(opts.Italic, []string{"sk", want}) {
		t.Errorf("Italic = %v, want [sk %s]", opts.Italic, want)
	}
}
