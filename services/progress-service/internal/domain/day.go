package domain

import (
	"fmt"
	"time"
)

const DayLayout = "2006-01-02"

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay reads a YYYY-MM-DD calendar day in loc (UTC when nil).
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DayLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: day %q: %v", ErrInvalidArgument, s, err)
	}
	return t, nil
}
