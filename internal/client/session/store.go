// Package session implements the client-side session cache: a single
// logical slot holding the last-issued token and user payload,
// persisted as a JSON file in the user's home directory.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/iliyamo/auth-service/internal/model"
)

// Payload is the client session slot contents: the token plus the
// public user view returned by register/login.
type Payload struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// Store persists a single Payload at a fixed file path.  At most one
// session exists per store; Save overwrites the slot.
type Store struct {
	path string
}

// NewStore returns a store rooted at the given path. An empty path
// defaults to $HOME/.authcli/session.json.
func NewStore(path string) *Store {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		path = filepath.Join(home, ".authcli", "session.json")
	}
	return &Store{path: path}
}

// Save writes the payload to the slot, creating parent directories as
// needed. The file is user-readable only since it holds a live token.
func (s *Store) Save(p Payload) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Load returns the slot contents and whether a usable session was
// present. A missing or malformed file is reported as no session, not
// as an error, so callers can always fall back to the login flow.
func (s *Store) Load() (Payload, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Payload{}, false
	}
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil || p.Token == "" {
		return Payload{}, false
	}
	return p, true
}

// Clear empties the slot. Clearing an already-empty slot is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
