// Package di wires implementation choices that depend on configuration.
package di

import (
	"registration_backend/internal/config"
	"registration_backend/internal/feature/account/usecase"
	"registration_backend/internal/platform/email"
	platformhttp "registration_backend/internal/platform/http"
)

// NewNotifier creates a Notifier implementation from configuration.
// In "http" mode it returns the provider-backed client; otherwise it falls
// back to the console client, which only logs.
func NewNotifier(cfg *config.Config) usecase.Notifier {
	if cfg.EmailProviderMode == "http" {
		return email.NewHTTPProvider(
			email.Config{BaseURL: cfg.EmailProviderBaseURL},
			platformhttp.NewHTTPClient(cfg.EmailProviderTimeout),
		)
	}
	return email.NewConsoleProvider()
}
