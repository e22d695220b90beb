package suggestEvent

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"poeHub/internal/lib/api/response"
	"poeHub/internal/lib/logger/sl"
	"poeHub/internal/models"
	"poeHub/internal/submission"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSuggester
type EventSuggester interface {
	Submit(ctx context.Context, in models.EventSuggestionInput, meta submission.Meta) submission.Result
}

// New runs the submission pipeline for a suggestion form. The page URL sent
// to the maintainers is the Referer, or siteURL when the client omits it.
func New(log *slog.Logger, suggester EventSuggester, siteURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.suggestEvent.New"

		log := log.With(slog.String("op", op))

		var req models.EventSuggestionInput

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		res := suggester.Submit(r.Context(), req, MetaFor(r, siteURL))

		if res.Success {
			log.Info("suggestion sent", slog.String("event_id", res.EventID), slog.String("reference", res.Reference))
		} else {
			log.Info("suggestion not sent", slog.String("type", string(res.Type)), slog.String("error", res.Error))
		}

		status, body := response.Submission(res)
		render.Status(r, status)
		render.JSON(w, r, body)
	}
}

func MetaFor(r *http.Request, siteURL string) submission.Meta {
	page := r.Referer()
	if page == "" {
		page = siteURL
	}

	return submission.Meta{PageURL: page}
}
