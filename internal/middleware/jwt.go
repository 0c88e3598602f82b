package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/auth-service/internal/utils" // token verification
)

// Context keys under which the guard stores the verified identity.
const (
    ContextUserIDKey   = "user_id"
    ContextUsernameKey = "username"
)

// JWTAuth returns an Echo middleware that validates a Bearer session token
// and injects the token's id and username claims into the request context.
// The provided secret must match the one used when issuing tokens.  This
// middleware should wrap protected routes so that handlers can access the
// authenticated identity via `c.Get(ContextUserIDKey)` and
// `c.Get(ContextUsernameKey)`.
//
// Each request is evaluated independently; there is no server-side session
// object.  A request without a bearer credential is rejected with 401, and
// any token that fails signature, structure, or expiry checks is rejected
// with 403.  An expired token always requires a fresh login.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Read the Authorization header.  A valid header should start
            // with "Bearer " followed by the token.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Access denied. No token provided."})
            }
            raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
            if raw == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Access denied. No token provided."})
            }

            claims, err := utils.ParseAccessToken(secret, raw)
            if err != nil {
                return c.JSON(http.StatusForbidden, echo.Map{"message": "Invalid token"})
            }

            // Store the verified identity in the context.  Handlers read
            // these values instead of re-parsing the token.
            c.Set(ContextUserIDKey, claims.UserID)
            c.Set(ContextUsernameKey, claims.Username)
            return next(c)
        }
    }
}
