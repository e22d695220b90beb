package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSuggestion() Suggestion {
	return Suggestion{
		FromName:    "Event Suggestion Form",
		EventJSON:   `{"id": "settlers-of-kalguur"}`,
		PageURL:     "https://hub.example.com/",
		SubmittedAt: "2024-07-20T10:00:00Z",
	}
}

func TestNewSuggestionTemplateUsesEventTemplate(t *testing.T) {
	t.Parallel()

	tmpl := NewSuggestionTemplate(Credentials{EventTemplateID: "template_event", ContactTemplateID: "template_contact"})

	p := tmpl(testSuggestion())

	ev, ok := p.(EventTemplatePayload)
	require.True(t, ok)
	assert.Equal(t, "template_event", p.TemplateID())
	assert.Equal(t, map[string]string{
		"from_name":    "Event Suggestion Form",
		"from_email":   NotProvided,
		"subject":      SuggestionSubject,
		"event_json":   `{"id": "settlers-of-kalguur"}`,
		"page_url":     "https://hub.example.com/",
		"submitted_at": "2024-07-20T10:00:00Z",
	}, ev.Params())
}

func TestNewSuggestionTemplateFallsBackToContact(t *testing.T) {
	t.Parallel()

	tmpl := NewSuggestionTemplate(Credentials{ContactTemplateID: "template_contact"})

	s := testSuggestion()
	s.FromEmail = "exile@wraeclast.com"

	p := tmpl(s)

	_, ok := p.(ContactTemplatePayload)
	require.True(t, ok)
	assert.Equal(t, "template_contact", p.TemplateID())

	params := p.Params()
	assert.Equal(t, "exile@wraeclast.com", params["from_email"])
	assert.Contains(t, params["message"], `{"id": "settlers-of-kalguur"}`)
	assert.Contains(t, params["message"], "https://hub.example.com/")
	assert.NotContains(t, params, "event_json")
}

func TestNewSuggestionTemplateWithoutAnyTemplate(t *testing.T) {
	t.Parallel()

	p := NewSuggestionTemplate(Credentials{})(testSuggestion())

	assert.Empty(t, p.TemplateID())
}
