// Package session holds the authenticated state of the CLI: the durable
// token store and the in-memory session lifecycle built on top of it.
package session

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rsinghcodes/nutriai/internal/model"
)

const (
	keyToken = "access_token"
	keyUser  = "user"
)

// Store persists exactly two values, the bearer token and the serialized
// user profile, in the local keyring table. They are written together and
// cleared together; a partial pair is treated as absent.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save writes the token and profile in one transaction.
func (s *Store) Save(token string, user model.User) error {
	if token == "" {
		return fmt.Errorf("refusing to save empty token")
	}
	serialized, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serialize user profile: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin keyring tx: %w", err)
	}
	upsert := `
INSERT INTO keyring(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`
	if _, err := tx.Exec(upsert, keyToken, token); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save token: %w", err)
	}
	if _, err := tx.Exec(upsert, keyUser, string(serialized)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save user profile: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit keyring tx: %w", err)
	}
	return nil
}

// Load returns the stored token and profile, or an empty token and nil user
// if the store was never written or has been cleared.
func (s *Store) Load() (string, *model.User, error) {
	token, ok, err := s.value(keyToken)
	if err != nil {
		return "", nil, err
	}
	serialized, userOK, err := s.value(keyUser)
	if err != nil {
		return "", nil, err
	}
	if !ok || !userOK {
		return "", nil, nil
	}
	var user model.User
	if err := json.Unmarshal([]byte(serialized), &user); err != nil {
		return "", nil, fmt.Errorf("decode stored user profile: %w", err)
	}
	return token, &user, nil
}

// Clear removes both values. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM keyring WHERE key IN (?, ?)`, keyToken, keyUser); err != nil {
		return fmt.Errorf("clear keyring: %w", err)
	}
	return nil
}

// Token returns only the bearer token, for request-time attachment. It
// satisfies api.TokenSource.
func (s *Store) Token() (string, error) {
	token, _, err := s.value(keyToken)
	return token, err
}

// ClearToken drops the credential pair after an authentication failure. It
// satisfies api.TokenSource.
func (s *Store) ClearToken() error {
	return s.Clear()
}

func (s *Store) value(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM keyring WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read keyring %q: %w", key, err)
	}
	return v, true, nil
}
