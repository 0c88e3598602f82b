package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  alice@x.com  \n"))

	got, err := GetSimpleText(r, "Enter email", &out)
	require.NoError(t, err)
	require.Equal(t, "alice@x.com", got)
	require.Contains(t, out.String(), "Enter email")
}

func TestGetSimpleTextPartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("alice"))

	got, err := GetSimpleText(r, "Enter username", &out)
	require.NoError(t, err)
	require.Equal(t, "alice", got)
}

func TestGetPasswordUsesStub(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret123"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, "secret123", got)
	require.Contains(t, out.String(), "Enter password")
}
