package validateEvent

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"poeHub/internal/lib/api/response"
	"poeHub/internal/lib/logger/sl"
	"poeHub/internal/models"
	"poeHub/internal/suggestion"
)

type ValidationResponse struct {
	response.Response
	Valid  bool                `json:"valid"`
	Errors []models.FieldError `json:"errors"`
}

// New checks a suggestion form without submitting it. Invalid forms are not
// a request failure and are answered with 200.
func New(log *slog.Logger, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.validateEvent.New"

		log := log.With(slog.String("op", op))

		var req models.EventSuggestionInput

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		res := suggestion.Validate(req, loc)

		log.Debug("form validated", slog.Bool("valid", res.Valid), slog.Int("errors", len(res.Errors)))

		resp := ValidationResponse{
			Response: response.OK(),
			Valid:    res.Valid,
			Errors:   res.Errors,
		}
		if !res.Valid {
			resp.Response = response.FieldErrors(res.Errors)
		}

		render.JSON(w, r, resp)
	}
}
