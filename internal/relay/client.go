// Package relay talks to the third-party email relay that turns template
// variables into an email for the site maintainers.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const sendPath = "/api/v1.0/email/send"

var ErrMissingCredentials = errors.New("email relay credentials are not configured")

type Credentials struct {
	ServiceID         string
	PublicKey         string
	EventTemplateID   string
	ContactTemplateID string
}

// Check reports ErrMissingCredentials naming every absent piece needed to
// send with templateID.
func (c Credentials) Check(templateID string) error {
	var missing []string

	if c.ServiceID == "" {
		missing = append(missing, "service id")
	}
	if c.PublicKey == "" {
		missing = append(missing, "public key")
	}
	if templateID == "" {
		missing = append(missing, "template id")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	return nil
}

// Response is the relay's answer. Status mirrors the HTTP status code.
type Response struct {
	Status int
	Text   string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send dispatches p. Any HTTP answer is returned as a Response; the error is
// reserved for failures to reach the relay at all.
func (c *Client) Send(ctx context.Context, serviceID, publicKey string, p Payload) (*Response, error) {
	const op = "relay.Client.Send"

	body, err := json.Marshal(sendRequest{
		ServiceID:      serviceID,
		TemplateID:     p.TemplateID(),
		UserID:         publicKey,
		TemplateParams: p.Params(),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", op, err)
	}

	return &Response{
		Status: resp.StatusCode,
		Text:   strings.TrimSpace(string(text)),
	}, nil
}
