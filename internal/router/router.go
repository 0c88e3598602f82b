package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/auth-service/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/auth-service/internal/middleware" // import middleware for session token verification
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations (register, login) live
// under /api/auth, and the protected profile endpoint sits behind the
// session guard in the same group.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Route group for the auth API.  Register and login mint tokens and
	// therefore take no credential themselves.
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	// The profile endpoint requires a valid session token.  The guard
	// middleware verifies the bearer credential and stores the decoded
	// identity in the request context before the handler runs.
	g.GET("/profile", a.Profile, middleware.JWTAuth(jwtSecret))
}
