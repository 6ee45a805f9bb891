package email

import (
	"context"
	"log/slog"
)

// ConsoleProvider writes messages to the log instead of sending them.
// It is the local fallback when no HTTP provider is configured.
type ConsoleProvider struct{}

// NewConsoleProvider creates a new ConsoleProvider.
func NewConsoleProvider() *ConsoleProvider {
	return &ConsoleProvider{}
}

// Send logs the message and always succeeds.
func (p *ConsoleProvider) Send(_ context.Context, msg Message) error {
	slog.Info("[email mock]", "to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}
