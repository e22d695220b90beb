package sendContact

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContactSender
type ContactSender interface {
	SubmitContact(ctx context.Context, in models.ContactInput, meta submission.Meta) submission.Result
}

func New(log *slog.Logger, sender ContactSender, siteURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contact.sendContact.New"

		log := log.With(slog.String("op", op))

		var req models.ContactInput

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		page := r.Referer()
		if page == "" {
			page = siteURL
		}

		res := sender.SubmitContact(r.Context(), req, submission.Meta{PageURL: page})
		if !res.Success {
			log.Info("contact message not sent", slog.String("type", string(res.Type)), slog.String("error", res.Error))
		}

		status, body := response.Submission(res)
		render.Status(r, status)
		render.JSON(w, r, body)
	}
}
