// Package holidays supplies the date sets that style calendar days.
//
// A [Provider] yields the holidays of a given year. Built-in providers cover
// the public holidays of a few countries and are selected by a short code
// such as "sk"; [LoadFile] reads custom sets from TOML.
package holidays

import (
	"slices"
	"sort"

	"github.com/matzehuels/pebblecal/pkg/calendar"
	"github.com/matzehuels/pebblecal/pkg/errors"
)

// Provider yields the holidays of a year.
type Provider interface {
	Dates(year int) Set
}

// Set maps dates to holiday names. It implements calendar.DateSet.
type Set map[calendar.Date]string

// Has reports whether d is in the set. A nil set is empty.
func (s Set) Has(d calendar.Date) bool {
	_, ok := s[d]
	return ok
}

// Sorted returns the dates in ascending order.
func (s Set) Sorted() []calendar.Date {
	ds := make([]calendar.Date, 0, len(s))
	for d := range s {
		ds = append(ds, d)
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].Before(ds[j]) })
	return ds
}

// Merge returns the union of sets. Names from later sets win.
func Merge(sets ...Set) Set {
	out := Set{}
	for _, s := range sets {
		for d, n := range s {
			out[d] = n
		}
	}
	return out
}

// Multi combines providers into one.
type Multi []Provider

func (m Multi) Dates(year int) Set {
	sets := make([]Set, len(m))
	for i, p := range m {
		sets[i] = p.Dates(year)
	}
	return Merge(sets...)
}

var registry = map[string]Provider{
	"sk": slovakia,
	"cz": czechia,
}

// Lookup returns the built-in provider for code.
func Lookup(code string) (Provider, error) {
	if err := errors.ValidateHolidayCode(code); err != nil {
		return nil, err
	}
	p, ok := registry[code]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown holiday set %q (available: %v)", code, Codes())
	}
	return p, nil
}

// Codes lists the built-in provider codes.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for c := range registry {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}
