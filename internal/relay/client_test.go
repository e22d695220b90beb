package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSend(t *testing.T) {
	t.Parallel()

	received := make(chan sendRequest, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, sendPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req sendRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		received <- req

		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)

	resp, err := c.Send(context.Background(), "service_1", "public_1", ContactTemplatePayload{
		Template:  "template_contact",
		FromName:  "Exile",
		FromEmail: "exile@wraeclast.com",
		Subject:   "Hello",
		Message:   "Hi there",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "OK", resp.Text)

	got := <-received
	assert.Equal(t, "service_1", got.ServiceID)
	assert.Equal(t, "template_contact", got.TemplateID)
	assert.Equal(t, "public_1", got.UserID)
	assert.Equal(t, "Hi there", got.TemplateParams["message"])
}

func TestClientSendNonOK(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The template ID is invalid"))
	}))
	defer srv.Close()

	resp, err := New(srv.URL, time.Second).Send(context.Background(), "s", "k", EventTemplatePayload{Template: "t"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "The template ID is invalid", resp.Text)
}

func TestClientSendUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	resp, err := New(url, time.Second).Send(context.Background(), "s", "k", EventTemplatePayload{Template: "t"})
	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestCredentialsCheck(t *testing.T) {
	t.Parallel()

	full := Credentials{ServiceID: "s", PublicKey: "k"}
	assert.NoError(t, full.Check("t"))

	err := Credentials{}.Check("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingCredentials))
	assert.Contains(t, err.Error(), "service id, public key, template id")

	err = Credentials{ServiceID: "s"}.Check("t")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.Contains(t, err.Error(), "public key")
}
