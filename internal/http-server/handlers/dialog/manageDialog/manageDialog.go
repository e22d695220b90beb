package manageDialog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"poeHub/internal/dialog"
	"poeHub/internal/lib/api/response"
	"poeHub/internal/lib/logger/sl"
	"poeHub/internal/models"
	"poeHub/internal/preview"
	"poeHub/internal/submission"
)

type OpenRequest struct {
	Focused string      `json:"focused" validate:"max=100"`
	Game    models.Game `json:"game" validate:"omitempty,oneof=poe1 poe2"`
}

type EditRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type DialogResponse struct {
	response.Response
	ID      string        `json:"id,omitempty"`
	Preview *preview.Card `json:"preview,omitempty"`
}

type CloseResponse struct {
	response.Response
	Focus string `json:"focus"`
}

type SubmitResponse struct {
	response.SubmissionResponse
	Focus string `json:"focus,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DialogManager
type DialogManager interface {
	Open(focused string, game models.Game) (string, dialog.State)
	Set(id, field, value string) error
	Preview(id string) (preview.Card, error)
	Close(id string) (string, error)
	Submit(ctx context.Context, id string, meta submission.Meta) (submission.Result, error)
}

func NewOpen(log *slog.Logger, dialogs DialogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dialog.manageDialog.NewOpen"

		log := log.With(slog.String("op", op))

		var req OpenRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		id, _ := dialogs.Open(req.Focused, req.Game)

		card, err := dialogs.Preview(id)
		if err != nil {
			log.Error("failed to render preview of new dialog", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to open dialog"))
			return
		}

		log.Info("dialog opened", slog.String("dialog_id", id))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, DialogResponse{
			Response: response.OK(),
			ID:       id,
			Preview:  &card,
		})
	}
}

func NewEdit(log *slog.Logger, dialogs DialogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dialog.manageDialog.NewEdit"

		id := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("dialog_id", id))

		var req EditRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if err := dialogs.Set(id, req.Field, req.Value); err != nil {
			renderDialogError(w, r, log, err)
			return
		}

		card, err := dialogs.Preview(id)
		if err != nil {
			renderDialogError(w, r, log, err)
			return
		}

		render.JSON(w, r, DialogResponse{
			Response: response.OK(),
			ID:       id,
			Preview:  &card,
		})
	}
}

func NewPreview(log *slog.Logger, dialogs DialogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dialog.manageDialog.NewPreview"

		id := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("dialog_id", id))

		card, err := dialogs.Preview(id)
		if err != nil {
			renderDialogError(w, r, log, err)
			return
		}

		render.JSON(w, r, DialogResponse{
			Response: response.OK(),
			ID:       id,
			Preview:  &card,
		})
	}
}

// NewSubmit submits the dialog's form. A successful submission closes the
// dialog. If the dialog was closed while the submission ran, its outcome is
// not reported.
func NewSubmit(log *slog.Logger, dialogs DialogManager, siteURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dialog.manageDialog.NewSubmit"

		id := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("dialog_id", id))

		page := r.Referer()
		if page == "" {
			page = siteURL
		}

		res, err := dialogs.Submit(r.Context(), id, submission.Meta{PageURL: page})
		if errors.Is(err, dialog.ErrDialogClosed) {
			log.Info("dialog closed during submission, dropping result", slog.Bool("success", res.Success))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("dialog closed"))
			return
		}
		if err != nil {
			renderDialogError(w, r, log, err)
			return
		}

		status, body := response.Submission(res)
		resp := SubmitResponse{SubmissionResponse: body}

		if res.Success {
			focus, err := dialogs.Close(id)
			if err != nil && !errors.Is(err, dialog.ErrNotFound) {
				log.Error("failed to close dialog", sl.Err(err))
			}
			resp.Focus = focus

			log.Info("suggestion submitted", slog.String("event_id", res.EventID))
		}

		render.Status(r, status)
		render.JSON(w, r, resp)
	}
}

func NewClose(log *slog.Logger, dialogs DialogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dialog.manageDialog.NewClose"

		id := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("dialog_id", id))

		focus, err := dialogs.Close(id)
		if err != nil {
			renderDialogError(w, r, log, err)
			return
		}

		log.Info("dialog closed")

		render.JSON(w, r, CloseResponse{
			Response: response.OK(),
			Focus:    focus,
		})
	}
}

func renderDialogError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, dialog.ErrNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("dialog not found"))
	case errors.Is(err, preview.ErrUnknownField):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown field"))
	default:
		log.Error("dialog operation failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
	}
}
