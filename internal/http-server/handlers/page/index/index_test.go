package index

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"poeHub/internal/http-server/handlers/page/index/mocks"
	"poeHub/internal/hub"
	"poeHub/internal/lib/logger/handlers/slogdiscard"
	"poeHub/internal/models"
	"poeHub/internal/web"
)

func TestIndexHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	pages, err := web.New()
	require.NoError(t, err)

	published := []models.Event{
		{ID: "poe2-race", Name: "Dawn Race", StartDate: "2999-01-01T00:00:00Z", EndDate: "2999-01-02T00:00:00Z", Game: models.GamePoE2, Type: "race"},
		{ID: "poe1-league", Name: "Keepers League", StartDate: "2999-02-01T00:00:00Z", EndDate: "2999-05-01T00:00:00Z", Game: models.GamePoE1, Type: "league"},
	}
	dir := &hub.Directory{Categories: []hub.Category{{
		ID: "builds", Name: "Builds",
		Links: []hub.Link{{Title: "poe.ninja", URL: "https://poe.ninja", Category: "builds"}},
	}}}

	testCases := []struct {
		name      string
		url       string
		mockSetup func(e *mocks.EventsGetter, d *mocks.DirectoryGetter)
		contains  []string
		excludes  []string
	}{
		{
			name: "Game filter",
			url:  "/?game=poe2",
			mockSetup: func(e *mocks.EventsGetter, d *mocks.DirectoryGetter) {
				e.On("GetAllEvents", mock.Anything).Return(published, nil)
				d.On("GetDirectory", mock.Anything, models.GamePoE2).Return(dir, nil)
			},
			contains: []string{`id="event-poe2-race"`, "poe.ninja"},
			excludes: []string{`id="event-poe1-league"`},
		},
		{
			name: "Unknown game shows everything",
			url:  "/?game=diablo",
			mockSetup: func(e *mocks.EventsGetter, d *mocks.DirectoryGetter) {
				e.On("GetAllEvents", mock.Anything).Return(published, nil)
				d.On("GetDirectory", mock.Anything, models.Game("")).Return(dir, nil)
			},
			contains: []string{`id="event-poe2-race"`, `id="event-poe1-league"`},
		},
		{
			name: "Sources failing",
			url:  "/",
			mockSetup: func(e *mocks.EventsGetter, d *mocks.DirectoryGetter) {
				e.On("GetAllEvents", mock.Anything).Return(nil, errors.New("no file"))
				d.On("GetDirectory", mock.Anything, models.Game("")).Return(nil, errors.New("no file"))
			},
			contains: []string{"No upcoming events."},
			excludes: []string{"poe.ninja"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			eventsGetter := mocks.NewEventsGetter(t)
			directory := mocks.NewDirectoryGetter(t)
			tc.mockSetup(eventsGetter, directory)

			rr := httptest.NewRecorder()
			New(logger, eventsGetter, directory, pages).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.url, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

			for _, s := range tc.contains {
				assert.Contains(t, rr.Body.String(), s)
			}
			for _, s := range tc.excludes {
				assert.NotContains(t, rr.Body.String(), s)
			}
		})
	}
}
