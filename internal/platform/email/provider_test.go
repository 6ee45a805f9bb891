package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *http.Client {
	return &http.Client{Timeout: 2 * time.Second}
}

func TestHTTPProvider_Send(t *testing.T) {
	msg := Message{
		To:      "user@example.com",
		From:    "no-reply@test.local",
		Subject: "Your activation code",
		Body:    "Your activation code is 1234.",
	}

	t.Run("posts the message to /send", func(t *testing.T) {
		var got sendRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/send", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		p := NewHTTPProvider(Config{BaseURL: srv.URL}, testClient())
		err := p.Send(context.Background(), msg)

		assert.NoError(t, err, "send should succeed on 2xx")
		assert.Equal(t, msg.To, got.To)
		assert.Equal(t, msg.From, got.From)
		assert.Equal(t, msg.Subject, got.Subject)
		assert.Equal(t, msg.Body, got.Body)
		assert.NotEmpty(t, got.MessageID, "every send carries a message id")
	})

	t.Run("non-2xx response is ErrProviderUnavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		p := NewHTTPProvider(Config{BaseURL: srv.URL}, testClient())
		err := p.Send(context.Background(), msg)

		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("unreachable provider is ErrProviderUnavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
		srv.Close() // nothing listens anymore

		p := NewHTTPProvider(Config{BaseURL: srv.URL}, testClient())
		err := p.Send(context.Background(), msg)

		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("cancelled context is ErrProviderUnavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := NewHTTPProvider(Config{BaseURL: srv.URL}, testClient())
		err := p.Send(ctx, msg)

		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})
}

func TestConsoleProvider_Send(t *testing.T) {
	p := NewConsoleProvider()

	err := p.Send(context.Background(), Message{To: "user@example.com", Subject: "s", Body: "b"})

	assert.NoError(t, err, "console provider always succeeds")
}
