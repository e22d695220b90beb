package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"poeHub/internal/config"
	"poeHub/internal/dialog"
	"poeHub/internal/eventstore"
	"poeHub/internal/http-server/handlers/contact/sendContact"
	"poeHub/internal/http-server/handlers/dialog/manageDialog"
	"poeHub/internal/http-server/handlers/event/getUpcomingEvents"
	"poeHub/internal/http-server/handlers/event/previewEvent"
	"poeHub/internal/http-server/handlers/event/suggestEvent"
	"poeHub/internal/http-server/handlers/event/validateEvent"
	"poeHub/internal/http-server/handlers/hub/getLinks"
	"poeHub/internal/http-server/handlers/page/index"
	"poeHub/internal/http-server/middleware/mwlogger"
	"poeHub/internal/hub"
	"poeHub/internal/lib/logger/handlers/slogpretty"
	"poeHub/internal/lib/logger/sl"
	"poeHub/internal/models"
	"poeHub/internal/preview"
	"poeHub/internal/relay"
	"poeHub/internal/scheduler"
	"poeHub/internal/storage/file"
	"poeHub/internal/storage/postgres"
	"poeHub/internal/submission"
	"poeHub/internal/web"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const dialogSweepSchedule = "@every 1m"

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting poe hub", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	loc, err := cfg.Location()
	if err != nil {
		log.Error("invalid timezone", slog.String("timezone", cfg.Timezone), sl.Err(err))
		os.Exit(1)
	}

	var (
		loader eventstore.Loader
		db     *postgres.Storage
	)

	switch cfg.Storage.Driver {
	case "postgres":
		db, err = postgres.InitDB(&cfg.Database, log)
		if err != nil {
			log.Error("failed to init storage", sl.Err(err))
			os.Exit(1)
		}
		loader = db
	default:
		loader = file.New(cfg.Storage.EventsPath, log)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	defer stop()

	store := eventstore.New(loader, log)
	if err := store.Refresh(ctx); err != nil {
		log.Warn("initial event load failed", sl.Err(err))
	}

	links := hub.NewSource(cfg.Storage.LinksPath, log)
	if err := links.Reload(ctx); err != nil {
		log.Warn("initial link directory load failed", sl.Err(err))
	}

	creds := relay.Credentials{
		ServiceID:         cfg.Relay.ServiceID,
		PublicKey:         cfg.Relay.PublicKey,
		EventTemplateID:   cfg.Relay.EventTemplateID,
		ContactTemplateID: cfg.Relay.ContactTemplateID,
	}
	suggestionTemplate := relay.NewSuggestionTemplate(creds)(relay.Suggestion{}).TemplateID()
	if err := creds.Check(suggestionTemplate); err != nil {
		log.Warn("email relay is not configured, submissions will fail", sl.Err(err))
	}

	pipeline := submission.New(log, relay.New(cfg.Relay.BaseURL, cfg.Relay.Timeout), creds, loc)

	logos := make(map[models.Game]string, len(cfg.Preview.Logos))
	for game, url := range cfg.Preview.Logos {
		logos[models.Game(game)] = url
	}

	renderer := preview.NewRenderer(preview.Defaults{
		CurrentGame: models.Game(cfg.Preview.DefaultGame),
		Logos:       logos,
		Location:    loc,
	})
	dialogs := dialog.NewManager(renderer, cfg.Preview.Debounce, pipeline)

	pages, err := web.New()
	if err != nil {
		log.Error("failed to parse templates", sl.Err(err))
		os.Exit(1)
	}

	sched := scheduler.New(log)

	refresh := func(ctx context.Context) error {
		if err := store.Refresh(ctx); err != nil {
			return err
		}
		return links.Reload(ctx)
	}
	if err := sched.Add("refresh-published-data", cfg.Storage.RefreshSchedule, refresh); err != nil {
		log.Error("invalid refresh schedule", sl.Err(err))
		os.Exit(1)
	}

	sweep := func(context.Context) error {
		if n := dialogs.Expire(cfg.Preview.DialogTTL); n > 0 {
			log.Info("expired stale dialogs", slog.Int("count", n))
		}
		return nil
	}
	if err := sched.Add("expire-dialogs", dialogSweepSchedule, sweep); err != nil {
		log.Error("invalid dialog sweep schedule", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Handle("/static/*", http.StripPrefix("/static", web.Static()))

	router.Get("/", index.New(log, store, links, pages))
	router.Get("/links", getLinks.New(log, links))

	router.Route("/events", func(r chi.Router) {
		r.Get("/", getUpcomingEvents.New(log, store))
		r.Post("/validate", validateEvent.New(log, loc))
		r.Post("/preview", previewEvent.New(log, renderer, pages))
		r.Post("/suggestions", suggestEvent.New(log, pipeline, cfg.SiteURL))
	})

	router.Route("/dialogs", func(r chi.Router) {
		r.Post("/", manageDialog.NewOpen(log, dialogs))
		r.Patch("/{id}/fields", manageDialog.NewEdit(log, dialogs))
		r.Get("/{id}/preview", manageDialog.NewPreview(log, dialogs))
		r.Post("/{id}/submit", manageDialog.NewSubmit(log, dialogs, cfg.SiteURL))
		r.Delete("/{id}", manageDialog.NewClose(log, dialogs))
	})

	router.Post("/contact", sendContact.New(log, pipeline, cfg.SiteURL))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:    cfg.HTTPServer.Address,
		Handler: router,
		// submissions wait on the email relay
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout + cfg.Relay.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	schedDone := make(chan struct{})
	go func() {
		sched.Start(ctx)
		close(schedDone)
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("application stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	<-schedDone

	log.Info("application stopped")

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("failed to close postgres connection", sl.Err(err))
		}

		log.Info("postgres connection closed")
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
