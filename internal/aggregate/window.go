package aggregate

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWindow is returned when the calendar fields do not name a real hour.
var ErrInvalidWindow = errors.New("invalid window")

// HourWindow is the inclusive interval [hh:00:00, hh:59:59] of one code.
type HourWindow struct {
	Code  string
	Start time.Time
	End   time.Time
}

// NewHourWindow validates the calendar fields and builds the window in loc.
// Values that time.Date would silently normalize (month 13, hour 24, Feb 30)
// are rejected with ErrInvalidWindow.
func NewHourWindow(code string, year, month, day, hour int, loc *time.Location) (HourWindow, error) {
	if loc == nil {
		return HourWindow{}, fmt.Errorf("%w: nil location", ErrInvalidWindow)
	}
	switch {
	case year < 1 || year > 9999:
		return HourWindow{}, fmt.Errorf("%w: year %d out of range", ErrInvalidWindow, year)
	case month < 1 || month > 12:
		return HourWindow{}, fmt.Errorf("%w: month %d out of range", ErrInvalidWindow, month)
	case hour < 0 || hour > 23:
		return HourWindow{}, fmt.Errorf("%w: hour %d out of range", ErrInvalidWindow, hour)
	case day < 1 || day > daysIn(year, time.Month(month)):
		return HourWindow{}, fmt.Errorf("%w: day %d out of range for %04d-%02d", ErrInvalidWindow, day, year, month)
	}

	start := time.Date(year, time.Month(month), day, hour, 0, 0, 0, loc)
	if start.Hour() != hour || start.Day() != day {
		// local clock skipped this hour (DST gap)
		return HourWindow{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:00 does not exist in %s", ErrInvalidWindow, year, month, day, hour, loc)
	}
	end := time.Date(year, time.Month(month), day, hour, 59, 59, 0, loc)

	return HourWindow{Code: code, Start: start, End: end}, nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
