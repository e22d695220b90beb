package models

// Game identifies which Path of Exile title an event belongs to.
type Game string

const (
	GamePoE1 Game = "poe1"
	GamePoE2 Game = "poe2"
)

// Valid reports whether g is one of the recognized game identifiers.
func (g Game) Valid() bool {
	return g == GamePoE1 || g == GamePoE2
}

// Label is the display name used on event cards.
func (g Game) Label() string {
	switch g {
	case GamePoE1:
		return "Path of Exile"
	case GamePoE2:
		return "Path of Exile 2"
	default:
		return "Path of Exile & Path of Exile 2"
	}
}

const DefaultEventType = "event"

// Event is a published event record. StartDate and EndDate are UTC
// RFC 3339 instants. An empty Game applies to both games.
type Event struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Game           Game   `json:"game,omitempty"`
	Type           string `json:"type"`
	BannerImageURL string `json:"bannerImageUrl,omitempty"`
	Description    string `json:"description,omitempty"`
	DetailsLink    string `json:"detailsLink,omitempty"`
}
