// Package middleware provides the Basic-Auth gate for the account feature.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key under which the authenticated user id is stored.
const UserIDKey = "userID"

// CredentialVerifier resolves an email/password pair to a user id.
// Following Go convention, the interface is defined by the consumer (middleware),
// not the provider (usecase).
type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, email, password string) (uint, error)
}

// BasicAuth returns middleware that identifies the caller from HTTP Basic
// credentials. On success the user id is stored in the gin context under
// UserIDKey; otherwise the request is aborted with 401 and a WWW-Authenticate
// challenge. The account does not need to be active to authenticate.
func BasicAuth(verifier CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="activation"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		userID, err := verifier.VerifyCredentials(c.Request.Context(), email, password)
		if err != nil {
			slog.Warn("basic auth failed", "email", email, "remote_addr", c.ClientIP())
			c.Header("WWW-Authenticate", `Basic realm="activation"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID extracts the authenticated user id stored by BasicAuth.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
