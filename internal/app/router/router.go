// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	accounthandler "registration_backend/internal/feature/account/transport/handler"
	"registration_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with all routes registered.
// The activation group sits behind the Basic-Auth gate; registration and the
// health probe do not require authentication.
func NewRouter(account *accounthandler.AccountHandler, basicAuth gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/health", handler.Health)

	// New user registration
	r.POST("/users/register", account.Register)

	// Activation requires Basic-Auth identification
	activation := r.Group("/activation")
	activation.Use(basicAuth)
	{
		activation.POST("", account.Activate)
	}

	return r
}
