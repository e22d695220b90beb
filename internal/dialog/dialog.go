// Package dialog models the event suggestion dialog as explicit state values
// and keeps the open dialogs of all visitors.
package dialog

import (
	"time"

	"poeHub/internal/preview"
)

// State is one dialog. The zero value is a closed dialog.
type State struct {
	Open        bool
	LastFocused string
	Form        *preview.Session
	OpenedAt    time.Time

	// Generation changes on every open so that work started against an
	// earlier opening can tell it has been superseded.
	Generation uint64
}

// Open returns s opened with a fresh form. Opening an open dialog is a no-op.
func Open(s State, focused string, newForm func() *preview.Session, now time.Time) State {
	if s.Open {
		return s
	}

	return State{
		Open:        true,
		LastFocused: focused,
		Form:        newForm(),
		OpenedAt:    now,
		Generation:  s.Generation + 1,
	}
}

// Close discards the form and returns the element that should get focus
// back. Closing a closed dialog returns "".
func Close(s State) (State, string) {
	if !s.Open {
		return s, ""
	}

	if s.Form != nil {
		s.Form.Close()
	}

	return State{Generation: s.Generation}, s.LastFocused
}
