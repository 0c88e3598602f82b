package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/auth-service/internal/utils"
)

const testSecret = "test-secret"

func invoke(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	}
	require.NoError(t, JWTAuth(testSecret)(next)(c))
	return rec, c, called
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _, called := invoke(t, "")
	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Access denied. No token provided.")
}

func TestJWTAuthWrongScheme(t *testing.T) {
	rec, _, called := invoke(t, "Basic abc123")
	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	rec, _, called := invoke(t, "Bearer not-a-token")
	require.False(t, called)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid token")
}

func TestJWTAuthExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, "alice", -61)
	require.NoError(t, err)

	rec, _, called := invoke(t, "Bearer "+tok.Token)
	require.False(t, called)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 42, "alice", 60)
	require.NoError(t, err)

	rec, _, called := invoke(t, "Bearer "+tok.Token)
	require.False(t, called)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJWTAuthValidTokenAttachesIdentity(t *testing.T) {
	// A token issued with half its lifetime left is still well inside
	// its validity window and must be accepted.
	tok, err := utils.NewAccessToken(testSecret, 42, "alice", 30)
	require.NoError(t, err)

	rec, c, called := invoke(t, "Bearer "+tok.Token)
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, uint64(42), c.Get(ContextUserIDKey))
	require.Equal(t, "alice", c.Get(ContextUsernameKey))
}
