package repositories

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// ParentCredentialStore reads the credential of the hosting application,
// whose store lives in another BadgerDB directory.
// The database is opened read-only for each read; it may be locked or absent.
type ParentCredentialStore struct {
	path   string
	origin string
	log    *slog.Logger
}

func NewParentCredentialStore(path, origin string, log *slog.Logger) ParentCredentialStore {
	return ParentCredentialStore{path: path, origin: origin, log: log}
}

func (p ParentCredentialStore) Read() (string, error) {
	db, err := badger.Open(badger.DefaultOptions(p.path).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return "", fmt.Errorf("open parent store %s: %w", p.path, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			p.log.Debug("Failed to close parent store", "error", err)
		}
	}()
	return NewCredentialRepository(db, p.log, p.origin).Read()
}

func (p ParentCredentialStore) Write(string) error {
	return fmt.Errorf("parent store %s is read-only", p.path)
}

func (p ParentCredentialStore) Clear() error {
	return fmt.Errorf("parent store %s is read-only", p.path)
}
