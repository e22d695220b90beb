package dialog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"poeHub/internal/models"
	"poeHub/internal/preview"
	"poeHub/internal/submission"
)

var (
	ErrNotFound     = errors.New("dialog not found")
	ErrDialogClosed = errors.New("dialog closed before submission finished")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Submitter
type Submitter interface {
	Submit(ctx context.Context, in models.EventSuggestionInput, meta submission.Meta) submission.Result
}

type Manager struct {
	renderer  *preview.Renderer
	debounce  time.Duration
	submitter Submitter

	now   func() time.Time
	newID func() string

	mu      sync.Mutex
	dialogs map[string]State
}

func NewManager(renderer *preview.Renderer, debounce time.Duration, submitter Submitter) *Manager {
	return &Manager{
		renderer:  renderer,
		debounce:  debounce,
		submitter: submitter,
		now:       time.Now,
		newID:     uuid.NewString,
		dialogs:   make(map[string]State),
	}
}

// Open starts a dialog with an empty form. game is the page's current game
// context used by the preview.
func (m *Manager) Open(focused string, game models.Game) (string, State) {
	id := m.newID()

	st := Open(State{}, focused, func() *preview.Session {
		return preview.NewSession(m.renderer, game, m.debounce)
	}, m.now())

	m.mu.Lock()
	m.dialogs[id] = st
	m.mu.Unlock()

	return id, st
}

func (m *Manager) get(id string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.dialogs[id]
	if !ok || !st.Open {
		return State{}, ErrNotFound
	}

	return st, nil
}

func (m *Manager) Set(id, field, value string) error {
	const op = "dialog.Manager.Set"

	st, err := m.get(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := st.Form.Set(field, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (m *Manager) Preview(id string) (preview.Card, error) {
	st, err := m.get(id)
	if err != nil {
		return preview.Card{}, fmt.Errorf("dialog.Manager.Preview: %w", err)
	}

	return st.Form.Preview(), nil
}

// Close discards the dialog and its form, returning the element to refocus.
func (m *Manager) Close(id string) (string, error) {
	m.mu.Lock()
	st, ok := m.dialogs[id]
	delete(m.dialogs, id)
	m.mu.Unlock()

	if !ok {
		return "", fmt.Errorf("dialog.Manager.Close: %w", ErrNotFound)
	}

	_, focus := Close(st)

	return focus, nil
}

// Submit runs the submission pipeline on the dialog's current form. The call
// is not aborted when the dialog closes meanwhile; its result is then
// returned together with ErrDialogClosed so callers can drop it.
func (m *Manager) Submit(ctx context.Context, id string, meta submission.Meta) (submission.Result, error) {
	const op = "dialog.Manager.Submit"

	st, err := m.get(id)
	if err != nil {
		return submission.Result{}, fmt.Errorf("%s: %w", op, err)
	}

	res := m.submitter.Submit(ctx, st.Form.Form(), meta)

	cur, err := m.get(id)
	if err != nil || cur.Generation != st.Generation {
		return res, fmt.Errorf("%s: %w", op, ErrDialogClosed)
	}

	return res, nil
}

// Expire closes dialogs opened more than ttl ago and reports how many.
func (m *Manager) Expire(ttl time.Duration) int {
	cutoff := m.now().Add(-ttl)

	m.mu.Lock()
	var stale []State
	for id, st := range m.dialogs {
		if st.OpenedAt.Before(cutoff) {
			stale = append(stale, st)
			delete(m.dialogs, id)
		}
	}
	m.mu.Unlock()

	for _, st := range stale {
		Close(st)
	}

	return len(stale)
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.dialogs)
}
