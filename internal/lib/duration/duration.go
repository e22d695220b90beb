// Package duration classifies an event window against the current time and
// formats the elapsed, remaining and total spans.
package duration

import (
	"fmt"
	"time"

	"poeHub/internal/lib/datetime"
)

type Info struct {
	IsActive          bool   `json:"isActive"`
	ElapsedDuration   string `json:"elapsedDuration,omitempty"`
	RemainingDuration string `json:"remainingDuration,omitempty"`
	TotalDuration     string `json:"totalDuration"`
}

// Calculate returns nil when either instant does not parse or when end is
// not after start. Elapsed and remaining are only set while the event is
// active (start <= now <= end).
func Calculate(startInstant, endInstant string, now time.Time) *Info {
	start, err := datetime.ParseInstant(startInstant)
	if err != nil {
		return nil
	}

	end, err := datetime.ParseInstant(endInstant)
	if err != nil {
		return nil
	}

	return Between(start, end, now)
}

// Between is Calculate over already parsed instants.
func Between(start, end, now time.Time) *Info {
	if !end.After(start) {
		return nil
	}

	info := &Info{
		IsActive:      !now.Before(start) && !now.After(end),
		TotalDuration: Format(end.Sub(start)),
	}

	if info.IsActive {
		info.ElapsedDuration = Format(now.Sub(start))
		info.RemainingDuration = Format(end.Sub(now))
	}

	return info
}

// StartsIn formats the time left until start. It is "" once start is reached.
func StartsIn(start, now time.Time) string {
	if !start.After(now) {
		return ""
	}

	return Format(start.Sub(now))
}

// Format renders d as "{days}d {hours}h {minutes}m", always with all three
// parts. Seconds are truncated and negative spans render as zero.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	minutes := int64(d / time.Minute)
	days := minutes / (24 * 60)
	hours := (minutes % (24 * 60)) / 60
	mins := minutes % 60

	return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
}
