package holidays

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pebblecal/pkg/calendar"
	"github.com/matzehuels/pebblecal/pkg/errors"
)

// File is a holiday set read from TOML:
//
//	[[holiday]]
//	date = 2024-03-15
//	name = "Company retreat"
//
//	[[annual]]
//	month = 12
//	day = 31
//	name = "New Year's Eve"
//
// Dated entries apply only to their own year; annual entries to every year.
type File struct {
	Path   string
	Dated  Set
	Annual Calendar
}

type fileEntry struct {
	Date any    `toml:"date"`
	Name string `toml:"name"`
}

type annualEntry struct {
	Month int    `toml:"month"`
	Day   int    `toml:"day"`
	Name  string `toml:"name"`
}

type fileDoc struct {
	Holiday []fileEntry   `toml:"holiday"`
	Annual  []annualEntry `toml:"annual"`
}

// LoadFile reads a holiday file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "holiday file %s", path)
		}
		return nil, fmt.Errorf("read holiday file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "holiday file %s", path)
	}
	f.Path = path
	return f, nil
}

// Parse decodes holiday TOML.
func Parse(data []byte) (*File, error) {
	var doc fileDoc
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, err
	}

	f := &File{Dated: Set{}}
	for i, e := range doc.Holiday {
		d, err := entryDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("holiday %d: %w", i+1, err)
		}
		f.Dated[d] = e.Name
	}
	for i, a := range doc.Annual {
		if a.Month < 1 || a.Month > 12 || a.Day < 1 || a.Day > daysIn(time.Month(a.Month)) {
			return nil, fmt.Errorf("annual %d: invalid month/day %d/%d", i+1, a.Month, a.Day)
		}
		f.Annual.Holidays = append(f.Annual.Holidays, Annual(a.Name, time.Month(a.Month), a.Day))
	}
	return f, nil
}

// entryDate accepts a TOML local date or a quoted ISO date.
func entryDate(v any) (calendar.Date, error) {
	switch v := v.(type) {
	case time.Time:
		return calendar.DateOf(v), nil
	case string:
		return calendar.ParseDate(v)
	case nil:
		return calendar.Date{}, fmt.Errorf("missing date")
	default:
		return calendar.Date{}, fmt.Errorf("unsupported date value %v", v)
	}
}

func (f *File) Dates(year int) Set {
	s := f.Annual.Dates(year)
	for d, n := range f.Dated {
		if d.Year == year {
			s[d] = n
		}
	}
	return s
}

// Resolve turns a CLI or config reference into a provider. A reference is
// either a built-in code or a path to a TOML file ending in .toml; several
// references are merged.
func Resolve(refs ...string) (Provider, error) {
	var m Multi
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if IsFile(ref) {
			f, err := LoadFile(ref)
			if err != nil {
				return nil, err
			}
			m = append(m, f)
			continue
		}
		p, err := Lookup(ref)
		if err != nil {
			return nil, err
		}
		m = append(m, p)
	}
	return m, nil
}

// IsFile reports whether ref names a holiday file rather than a built-in
// code.
func IsFile(ref string) bool {
	return strings.EqualFold(filepath.Ext(ref), ".toml")
}
