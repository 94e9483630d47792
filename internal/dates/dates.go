package dates

import (
	"errors"
	"time"
)

// ErrInvalidFormat is returned when a string is not a YYYY-MM-DD day id.
var ErrInvalidFormat = errors.New("invalid day id: want YYYY-MM-DD")

// DayID is the canonical YYYY-MM-DD key for a journal entry.
type DayID string

const dayLayout = "2006-01-02"

// ToDayID normalizes t to its calendar date in t's location. The time of
// day is irrelevant: every instant of the same local day maps to the same id.
func ToDayID(t time.Time) DayID {
	return DayID(t.Format(dayLayout))
}

// ParseDayID converts a day id back to midnight of that date in loc.
func ParseDayID(id DayID, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(dayLayout, string(id), loc)
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}
	return t, nil
}

// Valid reports whether id parses as a day id.
func (id DayID) Valid() bool {
	_, err := ParseDayID(id, time.UTC)
	return err == nil
}

// Midnight truncates t to 00:00 in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday on or before t at midnight.
// Sunday maps to the Monday six days earlier (ISO week start).
func StartOfWeek(t time.Time) time.Time {
	t = Midnight(t)
	diff := int(t.Weekday()) - int(time.Monday)
	if diff < 0 { // Sunday
		diff += 7
	}
	return t.AddDate(0, 0, -diff)
}

// AddDays returns t shifted by n calendar days, n may be negative.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
