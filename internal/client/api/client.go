// Package api implements the HTTP client used by the CLI to talk to
// the auth service. Successful register/login responses are written to
// the local session store; protected calls attach the stored bearer
// token.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iliyamo/auth-service/internal/client/session"
	"github.com/iliyamo/auth-service/internal/model"
)

// ErrNoSession is returned by protected calls when the session slot is
// empty or unreadable.
var ErrNoSession = errors.New("not logged in")

// Client calls the auth service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
}

// New returns a client for the service at baseURL, persisting sessions
// through the given store.
func New(baseURL string, store *session.Store) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		session: store,
	}
}

// Register creates an account and stores the returned session.
func (c *Client) Register(ctx context.Context, username, email, password string) (session.Payload, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var p session.Payload
	if err := c.post(ctx, "/api/auth/register", body, &p); err != nil {
		return session.Payload{}, err
	}
	if err := c.session.Save(p); err != nil {
		return session.Payload{}, fmt.Errorf("save session: %w", err)
	}
	return p, nil
}

// Login authenticates and stores the returned session.
func (c *Client) Login(ctx context.Context, email, password string) (session.Payload, error) {
	body := map[string]string{"email": email, "password": password}
	var p session.Payload
	if err := c.post(ctx, "/api/auth/login", body, &p); err != nil {
		return session.Payload{}, err
	}
	if err := c.session.Save(p); err != nil {
		return session.Payload{}, fmt.Errorf("save session: %w", err)
	}
	return p, nil
}

// Profile fetches the current user's stored record using the cached
// bearer token.
func (c *Client) Profile(ctx context.Context) (model.PublicUser, error) {
	p, ok := c.session.Load()
	if !ok {
		return model.PublicUser{}, ErrNoSession
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/profile", nil)
	if err != nil {
		return model.PublicUser{}, err
	}
	req.Header.Set("Authorization", "Bearer "+p.Token)

	var u model.PublicUser
	if err := c.do(req, &u); err != nil {
		return model.PublicUser{}, err
	}
	return u, nil
}

// Logout clears the local session slot. The server keeps no session
// state, so nothing is sent over the wire.
func (c *Client) Logout() error {
	return c.session.Clear()
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request and decodes the response. Non-2xx responses
// are turned into errors carrying the server's message field.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
