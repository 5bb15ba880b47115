package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// Supported calendar years. Day-of-week arithmetic is valid far beyond this,
// but a printed calendar outside it is almost certainly a typo.
const (
	MinYear = 1900
	MaxYear = 2200
)

// ValidateYear checks that year lies in [MinYear, MaxYear].
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return New(ErrCodeInvalidYear, "year %d out of range [%d, %d]", year, MinYear, MaxYear)
	}
	return nil
}

// ValidateOutputBase validates the base path output files are derived from.
//
// Validation rules:
//   - No empty base
//   - No control characters or null bytes
//   - Must not end in a path separator
func ValidateOutputBase(base string) error {
	if base == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	for _, r := range base {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}
	if strings.HasSuffix(base, "/") || strings.HasSuffix(base, "\\") {
		return New(ErrCodeInvalidPath, "output path %q names a directory", base)
	}
	return nil
}

var holidayCodeRegex = regexp.MustCompile(`^[a-z]{2,3}$`)

// ValidateHolidayCode checks the shape of a built-in holiday set code, such
// as "sk". It does not check that the set exists.
func ValidateHolidayCode(code string) error {
	if !holidayCodeRegex.MatchString(code) {
		return New(ErrCodeInvalidInput, "invalid holiday set code: %q", code)
	}
	return nil
}

// ValidateMonthNames checks that names holds twelve non-empty entries.
func ValidateMonthNames(names []string) error {
	if len(names) != 12 {
		return New(ErrCodeInvalidConfig, "expected 12 month names, got %d", len(names))
	}
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			return New(ErrCodeInvalidConfig, "month name %d is empty", i+1)
		}
	}
	return nil
}
