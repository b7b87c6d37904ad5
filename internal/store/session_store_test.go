package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileSessionStore {
	t.Helper()

	t.Setenv("SANAGUSTIN_HOME", t.TempDir())

	fs, err := NewFileSessionStore()
	require.NoError(t, err)
	return fs
}

func TestSaveAndLoadSession(t *testing.T) {
	fs := newTestStore(t)

	ses := &Session{
		Token:   "abc123",
		UserID:  42,
		Email:   "residente@test.com",
		IsAdmin: false,
	}

	require.NoError(t, fs.SaveSession(ses))
	assert.True(t, fs.HasSession())

	loaded, err := fs.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, ses, loaded)
}

func TestLoadSessionMissingFile(t *testing.T) {
	fs := newTestStore(t)

	assert.False(t, fs.HasSession())

	_, err := fs.LoadSession()
	require.Error(t, err)
}

func TestClearSession(t *testing.T) {
	fs := newTestStore(t)

	require.NoError(t, fs.SaveSession(&Session{Token: "tok", UserID: 1, Email: "a@b.c"}))
	require.NoError(t, fs.ClearSession())
	assert.False(t, fs.HasSession())

	// Повторный вызов идемпотентен
	require.NoError(t, fs.ClearSession())
}

func TestGetToken(t *testing.T) {
	fs := newTestStore(t)

	assert.Equal(t, "", fs.GetToken())

	require.NoError(t, fs.SaveSession(&Session{Token: "demo_token_residente", UserID: 1, Email: "residente@test.com"}))
	assert.Equal(t, "demo_token_residente", fs.GetToken())
}

func TestSessionFilePermissions(t *testing.T) {
	fs := newTestStore(t)

	require.NoError(t, fs.SaveSession(&Session{Token: "tok", UserID: 1, Email: "a@b.c"}))

	home := os.Getenv("SANAGUSTIN_HOME")
	info, err := os.Stat(filepath.Join(home, ".sanagustin", "session"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
