package repositories

import (
	"chat-session/errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const credentialPrefix = "credential:"

// CredentialKey is the origin-scoped key holding the credential.
func CredentialKey(origin string) string {
	return fmt.Sprintf("%s%s:token", credentialPrefix, origin)
}

// StoredCredential is one credential entry as found on disk.
type StoredCredential struct {
	Origin   string
	Value    string
	StoredAt time.Time
}

// CredentialRepository keeps the credential of one origin in BadgerDB.
// Values are protobuf-encoded structs {value, stored_at}.
type CredentialRepository struct {
	db  *badger.DB
	log *slog.Logger
	key []byte
	now func() time.Time
}

func NewCredentialRepository(db *badger.DB, log *slog.Logger, origin string) CredentialRepository {
	return CredentialRepository{db: db, log: log, key: []byte(CredentialKey(origin)), now: time.Now}
}

// Read returns errors.ErrCredentialNotFound when nothing is stored.
func (r CredentialRepository) Read() (string, error) {
	var raw []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(r.key)
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return "", errors.ErrCredentialNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", r.key, err)
	}
	stored, err := decodeCredential(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", r.key, err)
	}
	return stored.Value, nil
}

func (r CredentialRepository) Write(value string) error {
	if value == "" {
		return errors.ErrEmptyCredential
	}
	raw, err := encodeCredential(value, r.now())
	if err != nil {
		return err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(r.key, raw)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", r.key, err)
	}
	r.log.Debug("Credential stored", "key", string(r.key))
	return nil
}

// Clear deletes the entry. Clearing an empty store is not an error.
func (r CredentialRepository) Clear() error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(r.key)
	})
	if err != nil {
		return fmt.Errorf("clear %s: %w", r.key, err)
	}
	r.log.Debug("Credential cleared", "key", string(r.key))
	return nil
}

// ListCredentials scans every stored credential, whatever its origin.
func ListCredentials(db *badger.DB) ([]StoredCredential, error) {
	var credentials []StoredCredential
	err := db.View(func(txn *badger.Txn) error {
		prefix := []byte(credentialPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(raw []byte) error {
				stored, err := decodeCredential(raw)
				if err != nil {
					return fmt.Errorf("decode %s: %w", key, err)
				}
				stored.Origin = strings.TrimSuffix(strings.TrimPrefix(key, credentialPrefix), ":token")
				credentials = append(credentials, stored)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return credentials, err
}

func encodeCredential(value string, at time.Time) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"value":     value,
		"stored_at": at.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func decodeCredential(raw []byte) (StoredCredential, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(raw, &s); err != nil {
		return StoredCredential{}, err
	}
	fields := s.GetFields()
	stored := StoredCredential{Value: fields["value"].GetStringValue()}
	if at, err := time.Parse(time.RFC3339Nano, fields["stored_at"].GetStringValue()); err == nil {
		stored.StoredAt = at
	}
	return stored, nil
}
