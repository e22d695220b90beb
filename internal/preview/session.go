package preview

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"poeHub/internal/models"
)

var ErrUnknownField = errors.New("unknown form field")

type fieldKind int

const (
	debounced fieldKind = iota
	immediate
)

type field struct {
	kind fieldKind
	set  func(f *models.EventSuggestionInput, v string)
}

// Text-like fields wait for the debounce delay; dates, times, game and
// timezone re-render at once.
var fields = map[string]field{
	"name":           {debounced, func(f *models.EventSuggestionInput, v string) { f.Name = v }},
	"description":    {debounced, func(f *models.EventSuggestionInput, v string) { f.Description = v }},
	"bannerImageUrl": {debounced, func(f *models.EventSuggestionInput, v string) { f.BannerImageURL = v }},
	"detailsLink":    {debounced, func(f *models.EventSuggestionInput, v string) { f.DetailsLink = v }},
	"email":          {debounced, func(f *models.EventSuggestionInput, v string) { f.Email = v }},
	"game":           {immediate, func(f *models.EventSuggestionInput, v string) { f.Game = models.Game(v) }},
	"startDate":      {immediate, func(f *models.EventSuggestionInput, v string) { f.StartDate = v }},
	"startTime":      {immediate, func(f *models.EventSuggestionInput, v string) { f.StartTime = v }},
	"endDate":        {immediate, func(f *models.EventSuggestionInput, v string) { f.EndDate = v }},
	"endTime":        {immediate, func(f *models.EventSuggestionInput, v string) { f.EndTime = v }},
	"timezone":       {immediate, func(f *models.EventSuggestionInput, v string) { f.Timezone = v }},
}

// Session is the live form of one open dialog. The form itself changes on
// every Set; the preview card trails debounced fields by up to the delay and
// only the final state is guaranteed to be rendered.
type Session struct {
	renderer    *Renderer
	currentGame models.Game
	debouncer   *Debouncer

	mu       sync.Mutex
	form     models.EventSuggestionInput
	card     Card
	seq      uint64
	rendered uint64
}

func NewSession(r *Renderer, currentGame models.Game, delay time.Duration) *Session {
	s := &Session{
		renderer:    r,
		currentGame: currentGame,
		debouncer:   NewDebouncer(delay),
	}
	s.card = r.RenderFor(s.form, currentGame)

	return s
}

func (s *Session) Set(name, value string) error {
	f, ok := fields[name]
	if !ok {
		return fmt.Errorf("preview.Session.Set %q: %w", name, ErrUnknownField)
	}

	s.mu.Lock()
	f.set(&s.form, value)
	s.seq++
	s.mu.Unlock()

	if f.kind == immediate {
		s.debouncer.Cancel()
		s.render()
		return nil
	}

	s.debouncer.Trigger(s.render)

	return nil
}

func (s *Session) Form() models.EventSuggestionInput {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.form
}

func (s *Session) Preview() Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.card
}

// Pending reports whether a debounced update has not been rendered yet.
func (s *Session) Pending() bool {
	return s.debouncer.State() == Pending
}

// Close drops any pending render.
func (s *Session) Close() {
	s.debouncer.Cancel()
}

func (s *Session) render() {
	s.mu.Lock()
	form, seq := s.form, s.seq
	s.mu.Unlock()

	card := s.renderer.RenderFor(form, s.currentGame)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.rendered {
		return
	}
	s.card, s.rendered = card, seq
}
