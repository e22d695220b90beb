package suggestion

import (
	"strings"
	"time"

	"poeHub/internal/models"
)

// Suggestion is an event suggestion that passed validation. The only way to
// obtain one is New.
type Suggestion struct {
	input models.EventSuggestionInput
	loc   *time.Location
	start time.Time
	end   time.Time
}

type ValidationError struct {
	Result models.ValidationResult
}

func (e *ValidationError) Error() string {
	if len(e.Result.Errors) == 0 {
		return "validation failed"
	}

	return e.Result.Errors[0].Message
}

// New validates in and returns the validated suggestion, or a
// *ValidationError listing every failed rule.
func New(in models.EventSuggestionInput, defaultLoc *time.Location) (*Suggestion, error) {
	res, start, end := check(in, defaultLoc)
	if !res.Valid {
		return nil, &ValidationError{Result: res}
	}

	loc, _ := ResolveLocation(in.Timezone, defaultLoc)

	in.Name = strings.TrimSpace(in.Name)
	in.BannerImageURL = strings.TrimSpace(in.BannerImageURL)
	in.DetailsLink = strings.TrimSpace(in.DetailsLink)
	in.Email = strings.TrimSpace(in.Email)

	return &Suggestion{
		input: in,
		loc:   loc,
		start: start,
		end:   end,
	}, nil
}

func (s *Suggestion) Input() models.EventSuggestionInput { return s.input }

func (s *Suggestion) Location() *time.Location { return s.loc }

func (s *Suggestion) Start() time.Time { return s.start }

func (s *Suggestion) End() time.Time { return s.end }
