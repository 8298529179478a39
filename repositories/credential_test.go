package repositories

import (
	"chat-session/errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T, dir string) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	return db
}

func TestCredentialRepository_WriteReadClear(t *testing.T) {
	req := require.New(t)
	db := openDB(t, t.TempDir())
	defer db.Close()
	repository := NewCredentialRepository(db, slog.Default(), "https://chat.example.com")

	// Given an empty store
	_, err := repository.Read()
	req.ErrorIs(err, errors.ErrCredentialNotFound)

	// When a credential is written twice
	req.NoError(repository.Write("B"))
	req.NoError(repository.Write("A"))

	// Then the last one wins
	value, err := repository.Read()
	req.NoError(err)
	req.Equal("A", value)

	req.NoError(repository.Clear())
	_, err = repository.Read()
	req.ErrorIs(err, errors.ErrCredentialNotFound)

	// Clearing twice is harmless
	req.NoError(repository.Clear())
}

func TestCredentialRepository_RejectsEmptyValue(t *testing.T) {
	req := require.New(t)
	db := openDB(t, t.TempDir())
	defer db.Close()

	err := NewCredentialRepository(db, slog.Default(), "origin").Write("")

	req.ErrorIs(err, errors.ErrEmptyCredential)
}

func TestCredentialRepository_OriginsAreIsolated(t *testing.T) {
	req := require.New(t)
	db := openDB(t, t.TempDir())
	defer db.Close()
	first := NewCredentialRepository(db, slog.Default(), "https://a.example.com")
	second := NewCredentialRepository(db, slog.Default(), "https://b.example.com")

	req.NoError(first.Write("token-a"))

	_, err := second.Read()
	req.ErrorIs(err, errors.ErrCredentialNotFound)
	req.Equal("credential:https://a.example.com:token", CredentialKey("https://a.example.com"))
}

func TestListCredentials(t *testing.T) {
	req := require.New(t)
	db := openDB(t, t.TempDir())
	defer db.Close()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for origin, value := range map[string]string{"a": "token-a", "b": "token-b"} {
		repository := NewCredentialRepository(db, slog.Default(), origin)
		repository.now = func() time.Time { return at }
		req.NoError(repository.Write(value))
	}

	credentials, err := ListCredentials(db)

	req.NoError(err)
	req.Equal([]StoredCredential{
		{Origin: "a", Value: "token-a", StoredAt: at},
		{Origin: "b", Value: "token-b", StoredAt: at},
	}, credentials)
}

func TestParentCredentialStore(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	db := openDB(t, dir)
	req.NoError(NewCredentialRepository(db, slog.Default(), "origin").Write("C"))
	req.NoError(db.Close())

	parent := NewParentCredentialStore(dir, "origin", slog.Default())

	value, err := parent.Read()
	req.NoError(err)
	req.Equal("C", value)
	req.Error(parent.Write("D"))
	req.Error(parent.Clear())
}

func TestParentCredentialStore_MissingDirectoryFails(t *testing.T) {
	req := require.New(t)
	parent := NewParentCredentialStore(filepath.Join(t.TempDir(), "absent"), "origin", slog.Default())

	_, err := parent.Read()

	req.Error(err)
}

func TestSelectionStore_IsOneShot(t *testing.T) {
	req := require.New(t)
	store := NewSelectionStore("s2", "game-chat")

	serverID, channelID, ok := store.Take()
	req.True(ok)
	req.Equal("s2", serverID)
	req.Equal("game-chat", channelID)

	_, _, ok = store.Take()
	req.False(ok)

	_, _, ok = NewSelectionStore("", "").Take()
	req.False(ok)
}
