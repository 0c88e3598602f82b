package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/auth-service/internal/client/session"
	"github.com/iliyamo/auth-service/internal/model"
)

func newTestServer(t *testing.T) (*httptest.Server, *string) {
	t.Helper()
	var seenAuth string
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Username, Email, Password string }
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok123",
			"user":  model.PublicUser{ID: 1, Username: req.Username, Email: req.Email},
		})
	})

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Email, Password string }
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "secret123" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok456",
			"user":  model.PublicUser{ID: 1, Username: "alice", Email: req.Email},
		})
	})

	mux.HandleFunc("GET /api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		seenAuth = r.Header.Get("Authorization")
		if seenAuth == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Access denied. No token provided."})
			return
		}
		_ = json.NewEncoder(w).Encode(model.PublicUser{ID: 1, Username: "alice", Email: "alice@x.com"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &seenAuth
}

func newTestClient(t *testing.T) (*Client, *session.Store, *string) {
	t.Helper()
	srv, seenAuth := newTestServer(t)
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	return New(srv.URL, store), store, seenAuth
}

func TestRegisterStoresSession(t *testing.T) {
	c, store, _ := newTestClient(t)

	p, err := c.Register(context.Background(), "alice", "alice@x.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "tok123", p.Token)
	require.Equal(t, "alice", p.User.Username)

	saved, ok := store.Load()
	require.True(t, ok)
	require.Equal(t, p, saved)
}

func TestLoginStoresSession(t *testing.T) {
	c, store, _ := newTestClient(t)

	p, err := c.Login(context.Background(), "alice@x.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "tok456", p.Token)

	saved, ok := store.Load()
	require.True(t, ok)
	require.Equal(t, "tok456", saved.Token)
}

func TestLoginSurfacesServerMessage(t *testing.T) {
	c, store, _ := newTestClient(t)

	_, err := c.Login(context.Background(), "alice@x.com", "wrong")
	require.EqualError(t, err, "Invalid credentials")

	// a failed login must not leave a session behind
	_, ok := store.Load()
	require.False(t, ok)
}

func TestProfileAttachesBearerFromSession(t *testing.T) {
	c, store, seenAuth := newTestClient(t)
	require.NoError(t, store.Save(session.Payload{
		Token: "tok123",
		User:  model.PublicUser{ID: 1, Username: "alice", Email: "alice@x.com"},
	}))

	u, err := c.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, "Bearer tok123", *seenAuth)
}

func TestProfileWithoutSession(t *testing.T) {
	c, _, _ := newTestClient(t)
	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, ErrNoSession)
}

func TestLogoutClearsSession(t *testing.T) {
	c, store, _ := newTestClient(t)
	require.NoError(t, store.Save(session.Payload{Token: "tok123"}))

	require.NoError(t, c.Logout())
	_, ok := store.Load()
	require.False(t, ok)
}
