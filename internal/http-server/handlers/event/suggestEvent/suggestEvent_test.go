package suggestEvent

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"poeHub/internal/http-server/handlers/event/suggestEvent/mocks"
	"poeHub/internal/lib/logger/handlers/slogdiscard"
	"poeHub/internal/models"
	"poeHub/internal/submission"
)

const siteURL = "https://hub.example.com"

func TestSuggestEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	form := models.EventSuggestionInput{
		Name:      "Race",
		Game:      models.GamePoE1,
		StartDate: "2025-01-10",
		StartTime: "18:00",
		EndDate:   "2025-01-11",
		EndTime:   "18:00",
	}
	body := `{"name":"Race","game":"poe1","startDate":"2025-01-10","startTime":"18:00","endDate":"2025-01-11","endTime":"18:00"}`

	testCases := []struct {
		name           string
		body           string
		referer        string
		mockSetup      func(m *mocks.EventSuggester)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			body:    body,
			referer: "https://hub.example.com/?game=poe1",
			mockSetup: func(m *mocks.EventSuggester) {
				m.On("Submit", mock.Anything, form, submission.Meta{PageURL: "https://hub.example.com/?game=poe1"}).
					Return(submission.Result{Success: true, EventID: "race", Reference: "ref-1"})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","eventId":"race","reference":"ref-1"}`,
		},
		{
			name: "Validation failure",
			body: body,
			mockSetup: func(m *mocks.EventSuggester) {
				m.On("Submit", mock.Anything, form, submission.Meta{PageURL: siteURL}).
					Return(submission.Result{
						Error:  "Event name is required",
						Type:   submission.TypeValidation,
						Errors: []models.FieldError{{Field: "name", Message: "Event name is required"}},
					})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"status":"Error","error":"Event name is required","type":"validation",` +
				`"errors":[{"field":"name","message":"Event name is required"}]}`,
		},
		{
			name: "Relay not configured",
			body: body,
			mockSetup: func(m *mocks.EventSuggester) {
				m.On("Submit", mock.Anything, form, mock.Anything).
					Return(submission.Result{Error: submission.MsgConfiguration, Type: submission.TypeConfiguration})
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"Error","error":"` + submission.MsgConfiguration + `","type":"configuration"}`,
		},
		{
			name: "Network failure is retryable",
			body: body,
			mockSetup: func(m *mocks.EventSuggester) {
				m.On("Submit", mock.Anything, form, mock.Anything).
					Return(submission.Result{Error: submission.MsgNetwork, Type: submission.TypeNetwork, Retryable: true})
			},
			expectedStatus: http.StatusGatewayTimeout,
			expectedBody:   `{"status":"Error","error":"` + submission.MsgNetwork + `","type":"network","retryable":true}`,
		},
		{
			name:           "Malformed body",
			body:           `not json`,
			mockSetup:      func(m *mocks.EventSuggester) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			suggester := mocks.NewEventSuggester(t)
			tc.mockSetup(suggester)

			handler := New(logger, suggester, siteURL)

			req := httptest.NewRequest(http.MethodPost, "/events/suggestions", bytes.NewBufferString(tc.body))
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
