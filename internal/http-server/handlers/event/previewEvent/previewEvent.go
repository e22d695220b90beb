package previewEvent

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"poeHub/internal/lib/api/response"
	"poeHub/internal/lib/logger/sl"
	"poeHub/internal/models"
	"poeHub/internal/preview"
)

type PreviewResponse struct {
	response.Response
	Preview preview.Card `json:"preview"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Previewer
type Previewer interface {
	RenderFor(form models.EventSuggestionInput, currentGame models.Game) preview.Card
}

type CardRenderer interface {
	PreviewCard(w io.Writer, c preview.Card) error
}

// New renders the preview card for a partial form. ?game= carries the page's
// current game; ?format=html returns the card markup instead of JSON.
func New(log *slog.Logger, previewer Previewer, cards CardRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.previewEvent.New"

		log := log.With(slog.String("op", op))

		var form models.EventSuggestionInput

		if err := render.DecodeJSON(r.Body, &form); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		card := previewer.RenderFor(form, models.Game(r.URL.Query().Get("game")))

		if r.URL.Query().Get("format") == "html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")

			if err := cards.PreviewCard(w, card); err != nil {
				log.Error("failed to render preview card", sl.Err(err))
			}
			return
		}

		render.JSON(w, r, PreviewResponse{
			Response: response.OK(),
			Preview:  card,
		})
	}
}
