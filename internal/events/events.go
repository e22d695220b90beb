// Package events selects the published events worth showing and annotates
// them with their duration state.
package events

import (
	"sort"
	"time"

	"poeHub/internal/lib/datetime"
	"poeHub/internal/lib/duration"
	"poeHub/internal/models"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusUpcoming Status = "upcoming"
)

type Card struct {
	models.Event
	Status   Status         `json:"status"`
	Duration *duration.Info `json:"duration"`
	StartsIn string         `json:"startsIn,omitempty"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (c Card) GameLabel() string {
	return c.Game.Label()
}

// MatchesGame reports whether ev is shown under the game filter. An empty
// filter or an event without a game tag always matches.
func MatchesGame(ev models.Event, game models.Game) bool {
	return game == "" || ev.Game == "" || ev.Game == game
}

// Upcoming keeps events matching game that are running or have not started
// yet, sorted by start time. Events whose dates do not form a valid window
// are skipped.
func Upcoming(all []models.Event, game models.Game, now time.Time) []Card {
	cards := make([]Card, 0, len(all))

	for _, ev := range all {
		if !MatchesGame(ev, game) {
			continue
		}

		card, ok := NewCard(ev, now)
		if !ok {
			continue
		}

		if card.End.Before(now) {
			continue
		}

		cards = append(cards, card)
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Start.Before(cards[j].Start)
	})

	return cards
}

// NewCard annotates ev relative to now. It reports false for events with
// unparsable dates or an end not after the start.
func NewCard(ev models.Event, now time.Time) (Card, bool) {
	start, err := datetime.ParseInstant(ev.StartDate)
	if err != nil {
		return Card{}, false
	}

	end, err := datetime.ParseInstant(ev.EndDate)
	if err != nil {
		return Card{}, false
	}

	info := duration.Between(start, end, now)
	if info == nil {
		return Card{}, false
	}

	card := Card{
		Event:    ev,
		Duration: info,
		Start:    start,
		End:      end,
		Status:   StatusUpcoming,
	}

	if info.IsActive {
		card.Status = StatusActive
	} else {
		card.StartsIn = duration.StartsIn(start, now)
	}

	return card, true
}
