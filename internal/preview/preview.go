// Package preview renders an approximation of the final event card from a
// partially filled suggestion form.
package preview

import (
	"strings"
	"time"

	"poeHub/internal/lib/datetime"
	"poeHub/internal/lib/duration"
	"poeHub/internal/models"
	"poeHub/internal/suggestion"
)

const (
	PlaceholderName        = "Your Event Name"
	PlaceholderDescription = "Your event description will appear here..."
	PlaceholderLink        = "#"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusUpcoming Status = "upcoming"
	StatusEnded    Status = "ended"
)

type Defaults struct {
	// CurrentGame stands in for an unselected game.
	CurrentGame models.Game
	Logos       map[models.Game]string
	Location    *time.Location
}

// Card is what the preview shows. The *Placeholder flags mark substituted
// values.
type Card struct {
	Name                   string         `json:"name"`
	NamePlaceholder        bool           `json:"namePlaceholder"`
	Game                   models.Game    `json:"game"`
	GameLabel              string         `json:"gameLabel"`
	BannerURL              string         `json:"bannerUrl"`
	BannerIsLogo           bool           `json:"bannerIsLogo"`
	Description            string         `json:"description"`
	DescriptionPlaceholder bool           `json:"descriptionPlaceholder"`
	DetailsLink            string         `json:"detailsLink"`
	DetailsPlaceholder     bool           `json:"detailsPlaceholder"`
	StartDate              string         `json:"startDate"`
	EndDate                string         `json:"endDate"`
	Status                 Status         `json:"status"`
	Duration               *duration.Info `json:"duration,omitempty"`
	StartsIn               string         `json:"startsIn,omitempty"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

type Renderer struct {
	defaults Defaults
	now      func() time.Time
}

func NewRenderer(defaults Defaults) *Renderer {
	if defaults.Location == nil {
		defaults.Location = time.Local
	}
	if !defaults.CurrentGame.Valid() {
		defaults.CurrentGame = models.GamePoE1
	}

	return &Renderer{
		defaults: defaults,
		now:      time.Now,
	}
}

// Render fills every empty field with its default. It does not validate;
// an end not after the start simply yields a card without duration.
func (r *Renderer) Render(form models.EventSuggestionInput) Card {
	return r.RenderFor(form, r.defaults.CurrentGame)
}

// RenderFor is Render with an explicit game context, used when the page's
// current game differs from the configured default.
func (r *Renderer) RenderFor(form models.EventSuggestionInput, currentGame models.Game) Card {
	now := r.now()

	loc, err := suggestion.ResolveLocation(form.Timezone, r.defaults.Location)
	if err != nil {
		loc = r.defaults.Location
	}

	var c Card

	c.Name = strings.TrimSpace(form.Name)
	if c.Name == "" {
		c.Name, c.NamePlaceholder = PlaceholderName, true
	}

	c.Game = form.Game
	if !c.Game.Valid() {
		c.Game = currentGame
		if !c.Game.Valid() {
			c.Game = r.defaults.CurrentGame
		}
	}
	c.GameLabel = c.Game.Label()

	c.BannerURL = strings.TrimSpace(form.BannerImageURL)
	if c.BannerURL == "" {
		c.BannerURL, c.BannerIsLogo = r.defaults.Logos[c.Game], true
	}

	c.Description = strings.TrimSpace(form.Description)
	if c.Description == "" {
		c.Description, c.DescriptionPlaceholder = PlaceholderDescription, true
	}

	c.DetailsLink = strings.TrimSpace(form.DetailsLink)
	if c.DetailsLink == "" {
		c.DetailsLink, c.DetailsPlaceholder = PlaceholderLink, true
	}

	c.Start = parseOr(form.StartDate, form.StartTime, loc, datetime.Midnight(now, loc, 0))
	c.End = parseOr(form.EndDate, form.EndTime, loc, datetime.Midnight(now, loc, 1))
	c.StartDate = datetime.Format(c.Start)
	c.EndDate = datetime.Format(c.End)

	c.Duration = duration.Between(c.Start, c.End, now)

	switch {
	case c.Duration != nil && c.Duration.IsActive:
		c.Status = StatusActive
	case c.Start.After(now):
		c.Status = StatusUpcoming
		c.StartsIn = duration.StartsIn(c.Start, now)
	default:
		c.Status = StatusEnded
	}

	return c
}

func parseOr(date, clock string, loc *time.Location, fallback time.Time) time.Time {
	t, err := datetime.ParseLocal(datetime.Combine(date, clock), loc)
	if err != nil {
		return fallback
	}

	return t
}
