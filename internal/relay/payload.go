package relay

import "fmt"

const (
	SuggestionSubject = "New Event Suggestion"
	NotProvided       = "Not provided"
)

// Payload is a template id plus the variables the template expects.
type Payload interface {
	TemplateID() string
	Params() map[string]string
}

// EventTemplatePayload fills the dedicated event suggestion template.
type EventTemplatePayload struct {
	Template    string
	FromName    string
	FromEmail   string
	Subject     string
	EventJSON   string
	PageURL     string
	SubmittedAt string
}

func (p EventTemplatePayload) TemplateID() string { return p.Template }

func (p EventTemplatePayload) Params() map[string]string {
	return map[string]string{
		"from_name":    p.FromName,
		"from_email":   p.FromEmail,
		"subject":      p.Subject,
		"event_json":   p.EventJSON,
		"page_url":     p.PageURL,
		"submitted_at": p.SubmittedAt,
	}
}

// ContactTemplatePayload fills the contact form template.
type ContactTemplatePayload struct {
	Template  string
	FromName  string
	FromEmail string
	Subject   string
	Message   string
}

func (p ContactTemplatePayload) TemplateID() string { return p.Template }

func (p ContactTemplatePayload) Params() map[string]string {
	return map[string]string{
		"from_name":  p.FromName,
		"from_email": p.FromEmail,
		"subject":    p.Subject,
		"message":    p.Message,
	}
}

// Suggestion carries the fields of an event suggestion mail, independent of
// which template ends up delivering it.
type Suggestion struct {
	FromName    string
	FromEmail   string
	EventJSON   string
	PageURL     string
	SubmittedAt string
}

// SuggestionTemplate turns a suggestion into the payload of the template
// chosen at startup.
type SuggestionTemplate func(s Suggestion) Payload

// NewSuggestionTemplate picks the event template when one is configured and
// otherwise routes suggestions through the contact template, folding the
// event JSON into the message body.
func NewSuggestionTemplate(c Credentials) SuggestionTemplate {
	if c.EventTemplateID != "" {
		id := c.EventTemplateID

		return func(s Suggestion) Payload {
			return EventTemplatePayload{
				Template:    id,
				FromName:    s.FromName,
				FromEmail:   fromEmail(s.FromEmail),
				Subject:     SuggestionSubject,
				EventJSON:   s.EventJSON,
				PageURL:     s.PageURL,
				SubmittedAt: s.SubmittedAt,
			}
		}
	}

	id := c.ContactTemplateID

	return func(s Suggestion) Payload {
		return ContactTemplatePayload{
			Template:  id,
			FromName:  s.FromName,
			FromEmail: fromEmail(s.FromEmail),
			Subject:   SuggestionSubject,
			Message: fmt.Sprintf(
				"Event suggestion submitted from %s at %s\n\n%s",
				s.PageURL, s.SubmittedAt, s.EventJSON,
			),
		}
	}
}

func fromEmail(email string) string {
	if email == "" {
		return NotProvided
	}

	return email
}
