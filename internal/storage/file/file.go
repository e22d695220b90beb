// Package file reads the published events from the static JSON data file.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"poeHub/internal/lib/logger/sl"
	"poeHub/internal/models"
	"poeHub/internal/storage"
)

type Storage struct {
	path string
	log  *slog.Logger
}

func New(path string, log *slog.Logger) *Storage {
	return &Storage{
		path: path,
		log:  log,
	}
}

// GetAllEvents reads and checks the events file. Records that break the
// event invariants are logged and left out.
func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.file.GetAllEvents"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var all []models.Event
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("%s: decode %s: %w", op, s.path, err)
	}

	events, rejected := storage.CheckEvents(all)
	for _, err := range rejected {
		s.log.Warn("skipping published event", slog.String("op", op), sl.Err(err))
	}

	return events, nil
}
