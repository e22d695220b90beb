package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"poeHub/internal/config"
	"poeHub/internal/lib/datetime"
	"poeHub/internal/lib/logger/sl"
	"poeHub/internal/models"
	"poeHub/internal/storage"
)

// Storage reads published events from a table maintained outside this
// service. It never writes.
type Storage struct {
	DB  *sql.DB
	log *slog.Logger
}

func InitDB(dbCfg *config.Database, log *slog.Logger) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db, log: log}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.postgres.GetAllEvents"

	query := `
		SELECT id, name, start_date, end_date,
		       COALESCE(game, ''), COALESCE(type, ''),
		       COALESCE(banner_image_url, ''), COALESCE(description, ''), COALESCE(details_link, '')
		FROM published_events
		ORDER BY start_date ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get events: %w", op, err)
	}
	defer rows.Close()

	var all []models.Event
	for rows.Next() {
		var (
			event      models.Event
			start, end sql.NullTime
			game       string
		)

		err = rows.Scan(
			&event.ID,
			&event.Name,
			&start,
			&end,
			&game,
			&event.Type,
			&event.BannerImageURL,
			&event.Description,
			&event.DetailsLink,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan event: %w", op, err)
		}

		event.Game = models.Game(game)
		if start.Valid {
			event.StartDate = datetime.Format(start.Time)
		}
		if end.Valid {
			event.EndDate = datetime.Format(end.Time)
		}

		all = append(all, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating events: %w", op, err)
	}

	events, rejected := storage.CheckEvents(all)
	for _, err := range rejected {
		s.log.Warn("skipping published event", slog.String("op", op), sl.Err(err))
	}

	return events, nil
}
