// Package eventstore keeps an in-memory snapshot of the published events so
// that page loads do not hit the data source.
package eventstore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"poeHub/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Loader
type Loader interface {
	GetAllEvents(ctx context.Context) ([]models.Event, error)
}

type Store struct {
	loader Loader
	log    *slog.Logger

	mu       sync.RWMutex
	events   []models.Event
	loadedAt time.Time
	loaded   bool
}

func New(loader Loader, log *slog.Logger) *Store {
	return &Store{
		loader: loader,
		log:    log,
	}
}

// Refresh reloads the snapshot. On failure the previous snapshot is kept.
func (s *Store) Refresh(ctx context.Context) error {
	const op = "eventstore.Store.Refresh"

	events, err := s.loader.GetAllEvents(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.events = events
	s.loadedAt = time.Now()
	s.loaded = true
	s.mu.Unlock()

	s.log.Info("published events loaded", slog.String("op", op), slog.Int("count", len(events)))

	return nil
}

// GetAllEvents returns a copy of the snapshot, loading it first if no load
// has succeeded yet.
func (s *Store) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Event, len(s.events))
	copy(out, s.events)

	return out, nil
}

func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedAt
}
