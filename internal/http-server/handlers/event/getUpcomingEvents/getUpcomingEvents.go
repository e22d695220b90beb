package getUpcomingEvents

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"poeHub/internal/events"
	"poeHub/internal/lib/api/response"
	"poeHub/internal/lib/logger/sl"
	"poeHub/internal/models"
)

type EventsResponse struct {
	response.Response
	Game   models.Game   `json:"game,omitempty"`
	Events []events.Card `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	GetAllEvents(ctx context.Context) ([]models.Event, error)
}

func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getUpcomingEvents.New"

		log := log.With(slog.String("op", op))

		game := models.Game(r.URL.Query().Get("game"))
		if game != "" && !game.Valid() {
			log.Info("unknown game filter", slog.String("game", string(game)))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid game"))
			return
		}

		all, err := eventsGetter.GetAllEvents(r.Context())
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		cards := events.Upcoming(all, game, time.Now())

		log.Info("events retrieved successfully", slog.Int("published", len(all)), slog.Int("upcoming", len(cards)))

		responseOK(w, r, game, cards)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, game models.Game, cards []events.Card) {
	if cards == nil {
		cards = []events.Card{}
	}

	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Game:     game,
		Events:   cards,
	})
}
