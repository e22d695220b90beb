// Package suggestion validates event suggestion forms and produces the
// validated Suggestion type consumed by the submission pipeline.
package suggestion

import (
	"strings"
	"time"
	_ "time/tzdata"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"poeHub/internal/lib/datetime"
	"poeHub/internal/models"
)

const (
	FieldName        = "name"
	FieldGame        = "game"
	FieldStartDate   = "startDate"
	FieldEndDate     = "endDate"
	FieldBanner      = "bannerImageUrl"
	FieldDescription = "description"
	FieldDetailsLink = "detailsLink"
	FieldEmail       = "email"
	FieldTimezone    = "timezone"
)

const (
	MaxNameLength        = 200
	MaxURLLength         = 500
	MaxDescriptionLength = 2000
)

const (
	MsgNameRequired       = "Event name is required"
	MsgNameTooLong        = "Event name must be 200 characters or less"
	MsgGameRequired       = "Please select a game"
	MsgGameInvalid        = "Invalid game selection"
	MsgStartRequired      = "Start date and time are required"
	MsgStartInvalid       = "Invalid start date"
	MsgEndRequired        = "End date and time are required"
	MsgEndInvalid         = "Invalid end date"
	MsgEndBeforeStart     = "End date must be after start date"
	MsgBannerTooLong      = "Banner image URL must be 500 characters or less"
	MsgBannerInvalid      = "Banner image URL must be a valid URL"
	MsgDescriptionTooLong = "Description must be 2000 characters or less"
	MsgDetailsTooLong     = "Details link must be 500 characters or less"
	MsgDetailsInvalid     = "Details link must be a valid URL"
	MsgEmailInvalid       = "Please enter a valid email address"
	MsgTimezoneInvalid    = "Unknown timezone"
)

var validate = validator.New()

type collector struct {
	errs []models.FieldError
}

func (c *collector) add(field, msg string) {
	c.errs = append(c.errs, models.FieldError{Field: field, Message: msg})
}

func (c *collector) result() models.ValidationResult {
	if c.errs == nil {
		c.errs = []models.FieldError{}
	}

	return models.ValidationResult{
		Valid:  len(c.errs) == 0,
		Errors: c.errs,
	}
}

// Validate runs every rule against in and accumulates errors in field order:
// name, game, startDate, endDate, bannerImageUrl, description, detailsLink,
// email, timezone. Dates are read in the input's timezone, or defaultLoc
// when none is given.
func Validate(in models.EventSuggestionInput, defaultLoc *time.Location) models.ValidationResult {
	r, _, _ := check(in, defaultLoc)

	return r
}

func check(in models.EventSuggestionInput, defaultLoc *time.Location) (models.ValidationResult, time.Time, time.Time) {
	var c collector

	loc, tzErr := ResolveLocation(in.Timezone, defaultLoc)
	if tzErr != nil {
		loc = defaultLoc
	}

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		c.add(FieldName, MsgNameRequired)
	case utf8.RuneCountInString(name) > MaxNameLength:
		c.add(FieldName, MsgNameTooLong)
	}

	switch {
	case in.Game == "":
		c.add(FieldGame, MsgGameRequired)
	case !in.Game.Valid():
		c.add(FieldGame, MsgGameInvalid)
	}

	start, startOK := checkDate(&c, FieldStartDate, in.StartDate, in.StartTime, loc, MsgStartRequired, MsgStartInvalid)
	end, endOK := checkDate(&c, FieldEndDate, in.EndDate, in.EndTime, loc, MsgEndRequired, MsgEndInvalid)
	if startOK && endOK && !end.After(start) {
		c.add(FieldEndDate, MsgEndBeforeStart)
	}

	checkURL(&c, FieldBanner, in.BannerImageURL, MsgBannerTooLong, MsgBannerInvalid)

	if utf8.RuneCountInString(in.Description) > MaxDescriptionLength {
		c.add(FieldDescription, MsgDescriptionTooLong)
	}

	checkURL(&c, FieldDetailsLink, in.DetailsLink, MsgDetailsTooLong, MsgDetailsInvalid)

	if email := strings.TrimSpace(in.Email); email != "" && !IsEmail(email) {
		c.add(FieldEmail, MsgEmailInvalid)
	}

	if tzErr != nil {
		c.add(FieldTimezone, MsgTimezoneInvalid)
	}

	return c.result(), start, end
}

func checkDate(c *collector, field, date, clock string, loc *time.Location, requiredMsg, invalidMsg string) (time.Time, bool) {
	local := datetime.Combine(date, clock)
	if local == "" {
		c.add(field, requiredMsg)
		return time.Time{}, false
	}

	t, err := datetime.ParseLocal(local, loc)
	if err != nil {
		c.add(field, invalidMsg)
		return time.Time{}, false
	}

	return t, true
}

func checkURL(c *collector, field, raw, tooLongMsg, invalidMsg string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}

	if utf8.RuneCountInString(raw) > MaxURLLength {
		c.add(field, tooLongMsg)
	}

	if !IsURL(raw) {
		c.add(field, invalidMsg)
	}
}

// IsURL reports whether s is an absolute http or https URL.
func IsURL(s string) bool {
	return validate.Var(s, "required,http_url") == nil
}

// IsEmail reports whether s looks like local@domain.tld.
func IsEmail(s string) bool {
	if validate.Var(s, "required,email") != nil {
		return false
	}

	at := strings.LastIndex(s, "@")

	return strings.Contains(s[at+1:], ".")
}

// ResolveLocation loads the IANA zone name, or returns fallback (time.Local
// when nil) for an empty name.
func ResolveLocation(name string, fallback *time.Location) (*time.Location, error) {
	if fallback == nil {
		fallback = time.Local
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fallback, nil
	}

	return time.LoadLocation(name)
}
