package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/auth-service/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	p := Payload{
		Token: "tok123",
		User:  model.PublicUser{ID: 1, Username: "alice", Email: "alice@x.com"},
	}
	require.NoError(t, s.Save(p))

	got, ok := s.Load()
	require.True(t, ok)
	require.Equal(t, p, got)
}

func TestSaveOverwritesSlot(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(Payload{Token: "first"}))
	require.NoError(t, s.Save(Payload{Token: "second"}))

	got, ok := s.Load()
	require.True(t, ok)
	require.Equal(t, "second", got.Token)
}

func TestLoadAbsent(t *testing.T) {
	s := testStore(t)
	_, ok := s.Load()
	require.False(t, ok)
}

func TestLoadMalformedTreatedAsAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := NewStore(path)
	_, ok := s.Load()
	require.False(t, ok)
}

func TestClear(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(Payload{Token: "tok123"}))
	require.NoError(t, s.Clear())

	_, ok := s.Load()
	require.False(t, ok)

	// clearing twice is fine
	require.NoError(t, s.Clear())
}
