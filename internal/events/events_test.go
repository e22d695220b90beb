package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poeHub/internal/models"
)

var now = time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC)

func ev(id string, game models.Game, start, end string) models.Event {
	return models.Event{ID: id, Name: id, Game: game, StartDate: start, EndDate: end, Type: models.DefaultEventType}
}

func ids(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}

	return out
}

func TestUpcoming(t *testing.T) {
	t.Parallel()

	all := []models.Event{
		ev("past", models.GamePoE1, "2024-01-01T00:00:00Z", "2024-03-01T00:00:00Z"),
		ev("later", models.GamePoE1, "2025-01-10T00:00:00Z", "2025-04-01T00:00:00Z"),
		ev("running", "", "2024-07-26T16:00:00Z", "2024-12-02T16:00:00Z"),
		ev("soon", models.GamePoE2, "2024-11-01T00:00:00Z", "2024-11-02T00:00:00Z"),
		ev("ended-a-second-ago", models.GamePoE2, "2024-10-01T00:00:00Z", "2024-10-15T11:59:59Z"),
		ev("broken", models.GamePoE1, "2024-11-01T00:00:00Z", "2024-10-01T00:00:00Z"),
		ev("garbage", models.GamePoE1, "tomorrow", "2024-10-01T00:00:00Z"),
	}

	testCases := []struct {
		name string
		game models.Game
		want []string
	}{
		{name: "no filter", game: "", want: []string{"running", "soon", "later"}},
		{name: "poe1 keeps untagged", game: models.GamePoE1, want: []string{"running", "later"}},
		{name: "poe2 keeps untagged", game: models.GamePoE2, want: []string{"running", "soon"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ids(Upcoming(all, tc.game, now)))
		})
	}
}

func TestUpcomingCardState(t *testing.T) {
	t.Parallel()

	all := []models.Event{
		ev("running", "", "2024-07-26T16:00:00Z", "2024-12-02T16:00:00Z"),
		ev("soon", models.GamePoE2, "2024-10-16T14:30:00Z", "2024-10-20T00:00:00Z"),
	}

	cards := Upcoming(all, "", now)
	require.Len(t, cards, 2)

	running := cards[0]
	assert.Equal(t, StatusActive, running.Status)
	assert.True(t, running.Duration.IsActive)
	assert.Equal(t, "80d 20h 0m", running.Duration.ElapsedDuration)
	assert.Empty(t, running.StartsIn)

	soon := cards[1]
	assert.Equal(t, StatusUpcoming, soon.Status)
	assert.False(t, soon.Duration.IsActive)
	assert.Equal(t, "1d 2h 30m", soon.StartsIn)
	assert.Equal(t, "3d 9h 30m", soon.Duration.TotalDuration)
	assert.Equal(t, "Path of Exile 2", soon.GameLabel())
}

func TestUpcomingBoundaries(t *testing.T) {
	t.Parallel()

	all := []models.Event{
		ev("ends-now", "", "2024-10-01T00:00:00Z", "2024-10-15T12:00:00Z"),
		ev("starts-now", "", "2024-10-15T12:00:00Z", "2024-10-16T00:00:00Z"),
	}

	cards := Upcoming(all, "", now)

	assert.ElementsMatch(t, []string{"ends-now", "starts-now"}, ids(cards))
	for _, c := range cards {
		assert.Equal(t, StatusActive, c.Status)
	}
}

func TestUpcomingStableOnTies(t *testing.T) {
	t.Parallel()

	all := []models.Event{
		ev("b", "", "2024-11-01T00:00:00Z", "2024-11-03T00:00:00Z"),
		ev("a", "", "2024-11-01T00:00:00Z", "2024-11-02T00:00:00Z"),
		ev("c", "", "2024-10-20T00:00:00Z", "2024-11-02T00:00:00Z"),
	}

	assert.Equal(t, []string{"c", "b", "a"}, ids(Upcoming(all, "", now)))
}

func TestUpcomingPropertyOverMixedList(t *testing.T) {
	t.Parallel()

	var all []models.Event
	for i := -30; i <= 30; i++ {
		start := now.Add(time.Duration(i) * 12 * time.Hour)
		end := start.Add(time.Duration(1+(i+30)%5) * 24 * time.Hour)
		all = append(all, ev(start.Format(time.RFC3339), "", start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}

	kept := map[string]bool{}
	for _, c := range Upcoming(all, "", now) {
		kept[c.ID] = true
	}

	for _, e := range all {
		start, _ := time.Parse(time.RFC3339, e.StartDate)
		end, _ := time.Parse(time.RFC3339, e.EndDate)

		switch {
		case end.Before(now):
			assert.False(t, kept[e.ID], "past event %s kept", e.ID)
		case start.After(now), !start.After(now) && !end.Before(now):
			assert.True(t, kept[e.ID], "current or future event %s dropped", e.ID)
		}
	}
}
