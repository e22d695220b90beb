package getLinks

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"poeHub/internal/hub"
	"poeHub/internal/lib/api/response"
	"poeHub/internal/lib/logger/sl"
	"poeHub/internal/models"
)

type LinksResponse struct {
	response.Response
	Categories []hub.Category `json:"categories"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DirectoryGetter
type DirectoryGetter interface {
	GetDirectory(ctx context.Context, game models.Game) (*hub.Directory, error)
}

func New(log *slog.Logger, directory DirectoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hub.getLinks.New"

		log := log.With(slog.String("op", op))

		game := models.Game(r.URL.Query().Get("game"))
		if game != "" && !game.Valid() {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid game"))
			return
		}

		dir, err := directory.GetDirectory(r.Context(), game)
		if err != nil {
			log.Error("failed to get link directory", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get links"))
			return
		}

		categories := []hub.Category{}
		if dir != nil && dir.Categories != nil {
			categories = dir.Categories
		}

		render.JSON(w, r, LinksResponse{
			Response:   response.OK(),
			Categories: categories,
		})
	}
}
