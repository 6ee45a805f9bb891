package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// ErrProviderUnavailable indicates the email provider could not accept the message:
// a network failure, a timeout or a non-2xx response.
var ErrProviderUnavailable = errors.New("email provider unavailable")

// Config holds configuration for the HTTP email provider.
type Config struct {
	BaseURL string // Base URL of the provider API (e.g. "https://mail.example.com")
}

// sendRequest is the provider's /send payload.
type sendRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	MessageID string `json:"message_id"`
}

// HTTPProvider delivers messages through a third-party email provider's HTTP API.
// The client is intentionally thin and mockable.
type HTTPProvider struct {
	cfg    Config
	client *http.Client
}

// NewHTTPProvider creates a new HTTPProvider with the given configuration and HTTP client.
func NewHTTPProvider(cfg Config, client *http.Client) *HTTPProvider {
	return &HTTPProvider{cfg: cfg, client: client}
}

// Send posts the message to the provider. Any transport failure or non-2xx
// response is reported as ErrProviderUnavailable; the caller decides whether
// that is fatal for its own flow.
func (p *HTTPProvider) Send(ctx context.Context, msg Message) error {
	payload := sendRequest{
		From:      msg.From,
		To:        msg.To,
		Subject:   msg.Subject,
		Body:      msg.Body,
		MessageID: uuid.NewString(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("%w: http %d", ErrProviderUnavailable, res.StatusCode)
	}
	return nil
}
