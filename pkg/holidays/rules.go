package holidays

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/cz"
	"github.com/rickar/cal/v2/sk"

	"github.com/matzehuels/pebblecal/pkg/calendar"
)

// Calendar is a Provider backed by rickar/cal holiday definitions.
type Calendar struct {
	Holidays []*cal.Holiday

	// Abolished drops fixed dates the definitions still carry after the
	// holiday was repealed.
	Abolished []Abolished
}

// Abolished is a fixed-date holiday that no longer applies after LastYear.
type Abolished struct {
	Month    time.Month
	Day      int
	LastYear int
}

// Dates returns the actual (not observed) date of every holiday in year.
// Fixed dates that do not exist in year, such as February 29 outside leap
// years, are skipped.
func (c Calendar) Dates(year int) Set {
	s := Set{}
	for _, h := range c.Holidays {
		actual, _ := h.Calc(year)
		if actual.IsZero() {
			continue
		}
		d := calendar.DateOf(actual)
		if d.Year != year {
			continue
		}
		if h.Day != 0 && (d.Month != h.Month || d.Day != h.Day) {
			continue
		}
		if c.abolished(d) {
			continue
		}
		s[d] = h.Name
	}
	return s
}

func (c Calendar) abolished(d calendar.Date) bool {
	for _, a := range c.Abolished {
		if d.Month == a.Month && d.Day == a.Day && d.Year > a.LastYear {
			return true
		}
	}
	return false
}

// Annual returns a holiday on the same month and day every year.
func Annual(name string, month time.Month, day int) *cal.Holiday {
	return &cal.Holiday{
		Name:  name,
		Month: month,
		Day:   day,
		Func:  cal.CalcDayOfMonth,
	}
}

var (
	czechia = Calendar{Holidays: cz.Holidays}

	// Constitution Day stopped being a public holiday in 2024.
	slovakia = Calendar{
		Holidays:  sk.Holidays,
		Abolished: []Abolished{{Month: time.September, Day: 1, LastYear: 2023}},
	}
)

var easterSunday = &cal.Holiday{Name: "Easter Sunday", Func: cal.CalcEasterOffset}

// Easter returns Easter Sunday of the Gregorian calendar.
func Easter(year int) calendar.Date {
	actual, _ := easterSunday.Calc(year)
	return calendar.DateOf(actual)
}

// daysIn is the longest month length, counting February 29.
func daysIn(m time.Month) int {
	return time.Date(2024, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
