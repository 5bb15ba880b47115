package errors

import (
	"testing"
)

func TestValidateYear(t *testing.T) {
	tests := []struct {
		year    int
		wantErr bool
	}{
		{2024, false},
		{MinYear, false},
		{MaxYear, false},
		{MinYear - 1, true},
		{MaxYear + 1, true},
		{0, true},
	}

	for _, tt := range tests {
		err := ValidateYear(tt.year)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateYear(%d) error = %v, wantErr %v", tt.year, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidYear) {
			t.Errorf("ValidateYear(%d) code = %v", tt.year, GetCode(err))
		}
	}
}

func TestValidateOutputBase(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "calendar", false},
		{"nested", "out/calendar-2024", false},

		{"empty", "", true},
		{"directory", "out/", true},
		{"backslash dir", "out\\", true},
		{"null byte", "cal\x00endar", true},
		{"newline", "cal\nendar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputBase(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputBase(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHolidayCode(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"sk", false},
		{"cz", false},
		{"deu", false},
		{"", true},
		{"SK", true},
		{"s", true},
		{"../x", true},
	}

	for _, tt := range tests {
		err := ValidateHolidayCode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateHolidayCode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateMonthNames(t *testing.T) {
	ok := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	if err := ValidateMonthNames(ok); err != nil {
		t.Errorf("ValidateMonthNames(ok) = %v", err)
	}
	if err := ValidateMonthNames(ok[:11]); err == nil {
		t.Error("expected error for 11 names")
	}
	blank := append([]string(nil), ok...)
	blank[4] = "  "
	if err := ValidateMonthNames(blank); !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("blank name: got %v, want INVALID_CONFIG", err)
	}
}
