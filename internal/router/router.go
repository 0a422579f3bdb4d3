package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework handling the routing

	"github.com/Alena-Semenova/plan-d-back/internal/handler" // handlers implementing the endpoints
)

// RegisterRoutes registers the public surface of the service on the
// provided Echo instance: the health check plus the two account
// operations. There are no authenticated routes; issued tokens are
// verified by downstream consumers, not by this service.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler) {
	// Used by load balancers and monitoring to verify the service is up.
	e.GET("/healthz", handler.Health)
	// Create an account from a username/password pair.
	e.POST("/register", a.Register)
	// Exchange valid credentials for a session token.
	e.POST("/login", a.Login)
}
