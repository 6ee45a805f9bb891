// Package http provides a configured outbound HTTP client for external providers.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates an HTTP client for external API calls.
//
// http.DefaultClient has no timeout, so outbound calls always go through a
// custom client; the transport is set explicitly for connection stability and
// resource management:
//   - Proxy: honors HTTP_PROXY and friends when set
//   - Dialer.Timeout: TCP connect timeout, shorter than the default
//   - MaxIdleConns: caps idle connections to avoid exhaustion under load
//   - Client.Timeout: whole-request timeout, passed in by the caller
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
