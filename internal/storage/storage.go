package storage

import (
	"errors"
	"fmt"
	"strings"

	"poeHub/internal/lib/datetime"
	"poeHub/internal/models"
)

var ErrInvalidEvent = errors.New("invalid event")

// CheckEvents splits published events into those satisfying the record
// invariants and the reasons the rest were rejected. Missing types default
// to "event".
func CheckEvents(all []models.Event) ([]models.Event, []error) {
	valid := make([]models.Event, 0, len(all))
	var rejected []error

	seen := make(map[string]struct{}, len(all))

	for i, ev := range all {
		if err := checkEvent(ev); err != nil {
			rejected = append(rejected, fmt.Errorf("event #%d (%q): %w", i, ev.ID, err))
			continue
		}

		if _, dup := seen[ev.ID]; dup {
			rejected = append(rejected, fmt.Errorf("event #%d (%q): %w: duplicate id", i, ev.ID, ErrInvalidEvent))
			continue
		}
		seen[ev.ID] = struct{}{}

		if ev.Type == "" {
			ev.Type = models.DefaultEventType
		}

		valid = append(valid, ev)
	}

	return valid, rejected
}

func checkEvent(ev models.Event) error {
	if strings.TrimSpace(ev.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidEvent)
	}

	if strings.TrimSpace(ev.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidEvent)
	}

	if ev.Game != "" && !ev.Game.Valid() {
		return fmt.Errorf("%w: unknown game %q", ErrInvalidEvent, ev.Game)
	}

	start, err := datetime.ParseInstant(ev.StartDate)
	if err != nil {
		return fmt.Errorf("%w: startDate: %v", ErrInvalidEvent, err)
	}

	end, err := datetime.ParseInstant(ev.EndDate)
	if err != nil {
		return fmt.Errorf("%w: endDate: %v", ErrInvalidEvent, err)
	}

	if !end.After(start) {
		return fmt.Errorf("%w: endDate must be after startDate", ErrInvalidEvent)
	}

	return nil
}
