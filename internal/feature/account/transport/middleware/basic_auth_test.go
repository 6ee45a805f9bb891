package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"registration_backend/internal/feature/account/usecase"
)

// mockVerifier is a mock implementation of the CredentialVerifier interface.
type mockVerifier struct {
	VerifyFunc func(ctx context.Context, email, password string) (uint, error)
}

func (m *mockVerifier) VerifyCredentials(ctx context.Context, email, password string) (uint, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, password)
	}
	return 0, usecase.ErrInvalidCredentials
}

func setupRouter(verifier CredentialVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/activation", BasicAuth(verifier), func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user id"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func TestBasicAuth(t *testing.T) {
	t.Run("missing Authorization header", func(t *testing.T) {
		r := setupRouter(&mockVerifier{})

		req := httptest.NewRequest(http.MethodPost, "/activation", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		verifier := &mockVerifier{
			VerifyFunc: func(ctx context.Context, email, password string) (uint, error) {
				return 0, usecase.ErrInvalidCredentials
			},
		}
		r := setupRouter(verifier)

		req := httptest.NewRequest(http.MethodPost, "/activation", nil)
		req.SetBasicAuth("a@b.com", "wrong-password")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")
	})

	t.Run("valid credentials reach the handler with the user id set", func(t *testing.T) {
		var gotEmail, gotPassword string
		verifier := &mockVerifier{
			VerifyFunc: func(ctx context.Context, email, password string) (uint, error) {
				gotEmail, gotPassword = email, password
				return 42, nil
			},
		}
		r := setupRouter(verifier)

		req := httptest.NewRequest(http.MethodPost, "/activation", nil)
		req.SetBasicAuth("a@b.com", "Password123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "a@b.com", gotEmail)
		assert.Equal(t, "Password123", gotPassword)
		assert.Contains(t, w.Body.String(), "42")
	})
}

func TestUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("absent", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, ok := UserID(c)

		assert.False(t, ok)
	})

	t.Run("present", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(UserIDKey, uint(7))

		id, ok := UserID(c)

		assert.True(t, ok)
		assert.Equal(t, uint(7), id)
	})
}
