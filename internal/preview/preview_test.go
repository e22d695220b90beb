package preview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poeHub/internal/models"
)

var logos = map[models.Game]string{
	models.GamePoE1: "/static/img/poe1-logo.png",
	models.GamePoE2: "/static/img/poe2-logo.png",
}

func newTestRenderer(now time.Time) *Renderer {
	r := NewRenderer(Defaults{CurrentGame: models.GamePoE2, Logos: logos, Location: time.UTC})
	r.now = func() time.Time { return now }

	return r
}

func TestRenderEmptyForm(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 10, 15, 12, 30, 0, 0, time.UTC)

	c := newTestRenderer(now).Render(models.EventSuggestionInput{})

	assert.Equal(t, PlaceholderName, c.Name)
	assert.True(t, c.NamePlaceholder)
	assert.Equal(t, models.GamePoE2, c.Game)
	assert.Equal(t, "Path of Exile 2", c.GameLabel)
	assert.Equal(t, "/static/img/poe2-logo.png", c.BannerURL)
	assert.True(t, c.BannerIsLogo)
	assert.Equal(t, PlaceholderDescription, c.Description)
	assert.True(t, c.DescriptionPlaceholder)
	assert.Equal(t, PlaceholderLink, c.DetailsLink)
	assert.True(t, c.DetailsPlaceholder)

	assert.Equal(t, "2024-10-15T00:00:00Z", c.StartDate)
	assert.Equal(t, "2024-10-16T00:00:00Z", c.EndDate)
	assert.Equal(t, StatusActive, c.Status)
	require.NotNil(t, c.Duration)
	assert.Equal(t, "1d 0h 0m", c.Duration.TotalDuration)
}

func TestRenderFilledForm(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 7, 25, 16, 0, 0, 0, time.UTC)

	c := newTestRenderer(now).Render(models.EventSuggestionInput{
		Name:           " Settlers of Kalguur ",
		Game:           models.GamePoE1,
		StartDate:      "2024-07-26",
		StartTime:      "16:00",
		EndDate:        "2024-12-02",
		EndTime:        "16:00",
		BannerImageURL: "https://example.com/banner.png",
		Description:    "Gold and ships.",
		DetailsLink:    "https://pathofexile.com/settlers",
	})

	assert.Equal(t, "Settlers of Kalguur", c.Name)
	assert.False(t, c.NamePlaceholder)
	assert.Equal(t, models.GamePoE1, c.Game)
	assert.Equal(t, "https://example.com/banner.png", c.BannerURL)
	assert.False(t, c.BannerIsLogo)
	assert.Equal(t, "https://pathofexile.com/settlers", c.DetailsLink)
	assert.False(t, c.DetailsPlaceholder)
	assert.Equal(t, StatusUpcoming, c.Status)
	assert.Equal(t, "1d 0h 0m", c.StartsIn)
	assert.Equal(t, "129d 0h 0m", c.Duration.TotalDuration)
}

func TestRenderInvalidWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 7, 25, 16, 0, 0, 0, time.UTC)

	c := newTestRenderer(now).Render(models.EventSuggestionInput{
		StartDate: "2024-07-26", StartTime: "16:00",
		EndDate: "2024-07-20", EndTime: "16:00",
	})

	assert.Nil(t, c.Duration)
	assert.Equal(t, StatusUpcoming, c.Status)
}

func TestRenderForUsesPageGame(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(time.Now())

	c := r.RenderFor(models.EventSuggestionInput{}, models.GamePoE1)
	assert.Equal(t, models.GamePoE1, c.Game)
	assert.Equal(t, "/static/img/poe1-logo.png", c.BannerURL)

	c = r.RenderFor(models.EventSuggestionInput{Game: "bogus"}, "")
	assert.Equal(t, models.GamePoE2, c.Game)
}
