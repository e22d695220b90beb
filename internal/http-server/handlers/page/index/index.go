package index

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"poeHub/internal/events"
	"poeHub/internal/hub"
	"poeHub/internal/lib/logger/sl"
	"poeHub/internal/models"
	"poeHub/internal/web"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	GetAllEvents(ctx context.Context) ([]models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DirectoryGetter
type DirectoryGetter interface {
	GetDirectory(ctx context.Context, game models.Game) (*hub.Directory, error)
}

type PageRenderer interface {
	Index(w io.Writer, p web.IndexPage) error
}

// New renders the hub page. A failing event or link source leaves its
// section empty rather than failing the page.
func New(log *slog.Logger, eventsGetter EventsGetter, directory DirectoryGetter, pages PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.page.index.New"

		log := log.With(slog.String("op", op))

		game := models.Game(r.URL.Query().Get("game"))
		if !game.Valid() {
			game = ""
		}

		now := time.Now()
		page := web.IndexPage{Game: game, GeneratedAt: now}

		all, err := eventsGetter.GetAllEvents(r.Context())
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
		}
		page.Events = events.Upcoming(all, game, now)

		page.Directory, err = directory.GetDirectory(r.Context(), game)
		if err != nil {
			log.Error("failed to get link directory", sl.Err(err))
		}

		var buf bytes.Buffer
		if err := pages.Index(&buf, page); err != nil {
			log.Error("failed to render page", sl.Err(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}
