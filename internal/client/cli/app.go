// Package cli implements the command-line client for the auth service:
// register, login, whoami and logout, with the session kept in a local
// file between invocations.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/iliyamo/auth-service/internal/client/api"
	"github.com/iliyamo/auth-service/internal/client/session"
)

// App wires the API client, the session store and the input reader.
type App struct {
	client  *api.Client
	session *session.Store
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp builds an App talking to serverURL, persisting the session at
// sessionPath (empty means the default under $HOME).
func NewApp(serverURL, sessionPath string) *App {
	store := session.NewStore(sessionPath)
	return &App{
		client:  api.New(serverURL, store),
		session: store,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// Run dispatches a single command and returns its error, if any.
func (a *App) Run(ctx context.Context, command string) error {
	switch command {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "logout":
		return a.Logout()
	default:
		return fmt.Errorf("unknown command %q (expected register, login, whoami or logout)", command)
	}
}

// Register prompts for username, email and password and creates an
// account. On success the issued session is stored locally, so the
// user is immediately logged in.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	p, err := a.client.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered and logged in as %s\n", p.User.Username)
	return nil
}

// Login prompts for email and password and stores the issued session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	p, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", p.User.Username)
	return nil
}

// WhoAmI fetches the profile of the current session from the server.
// The stored record is authoritative, not the cached payload: a stale
// or revoked account shows up here as an error.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.client.Profile(ctx)
	if err != nil {
		if errors.Is(err, api.ErrNoSession) {
			return errors.New("no active session, run login first")
		}
		return err
	}
	fmt.Fprintf(a.out, "id:       %d\nusername: %s\nemail:    %s\n", u.ID, u.Username, u.Email)
	return nil
}

// Logout clears the local session slot.
func (a *App) Logout() error {
	if err := a.client.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
