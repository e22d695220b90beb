// Package datetime converts local wall-clock form values into canonical
// UTC instants and back.
package datetime

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// InstantLayout is the canonical instant format of published events.
const InstantLayout = "2006-01-02T15:04:05Z"

var ErrEmpty = errors.New("date and time are required")

var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// Combine joins a date ("2006-01-02") and a clock ("15:04") into the local
// date-time form accepted by ParseLocal. It returns "" if either is blank.
func Combine(date, clock string) string {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return ""
	}

	return date + "T" + clock
}

// ParseLocal interprets a combined local date-time in loc.
func ParseLocal(local string, loc *time.Location) (time.Time, error) {
	const op = "datetime.ParseLocal"

	if local == "" {
		return time.Time{}, fmt.Errorf("%s: %w", op, ErrEmpty)
	}

	if loc == nil {
		loc = time.Local
	}

	var lastErr error
	for _, layout := range localLayouts {
		t, err := time.ParseInLocation(layout, local, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, fmt.Errorf("%s: %w", op, lastErr)
}

// Normalize converts a local date-time into a UTC instant string. It returns
// an empty string when local is not a valid calendar date and time.
func Normalize(local string, loc *time.Location) string {
	t, err := ParseLocal(local, loc)
	if err != nil {
		return ""
	}

	return Format(t)
}

func Format(t time.Time) string {
	return t.UTC().Format(InstantLayout)
}

// ParseInstant parses a published RFC 3339 instant.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("datetime.ParseInstant: %w", err)
	}

	return t, nil
}

// Midnight returns 00:00 of t's calendar day in loc, shifted by days.
func Midnight(t time.Time, loc *time.Location, days int) time.Time {
	if loc == nil {
		loc = time.Local
	}
	lt := t.In(loc)

	return time.Date(lt.Year(), lt.Month(), lt.Day()+days, 0, 0, 0, 0, loc)
}
