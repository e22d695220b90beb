package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poeHub/internal/models"
)

func TestCheckEvents(t *testing.T) {
	t.Parallel()

	all := []models.Event{
		{ID: "settlers", Name: "Settlers", StartDate: "2024-07-26T16:00:00Z", EndDate: "2024-12-02T16:00:00Z"},
		{ID: "", Name: "No id", StartDate: "2024-07-26T16:00:00Z", EndDate: "2024-12-02T16:00:00Z"},
		{ID: "no-name", Name: " ", StartDate: "2024-07-26T16:00:00Z", EndDate: "2024-12-02T16:00:00Z"},
		{ID: "reversed", Name: "Reversed", StartDate: "2024-12-02T16:00:00Z", EndDate: "2024-07-26T16:00:00Z"},
		{ID: "bad-date", Name: "Bad", StartDate: "July", EndDate: "2024-07-26T16:00:00Z"},
		{ID: "bad-game", Name: "Bad game", Game: "diablo", StartDate: "2024-07-26T16:00:00Z", EndDate: "2024-12-02T16:00:00Z"},
		{ID: "settlers", Name: "Duplicate", StartDate: "2024-07-26T16:00:00Z", EndDate: "2024-12-02T16:00:00Z"},
		{ID: "race", Name: "Race", Game: models.GamePoE2, Type: "race", StartDate: "2024-12-06T19:00:00Z", EndDate: "2024-12-07T19:00:00Z"},
	}

	valid, rejected := CheckEvents(all)

	require.Len(t, valid, 2)
	assert.Equal(t, "settlers", valid[0].ID)
	assert.Equal(t, models.DefaultEventType, valid[0].Type)
	assert.Equal(t, "race", valid[1].ID)
	assert.Equal(t, "race", valid[1].Type)

	require.Len(t, rejected, 6)
	for _, err := range rejected {
		assert.ErrorIs(t, err, ErrInvalidEvent)
	}
	assert.Contains(t, rejected[5].Error(), "duplicate id")
}
