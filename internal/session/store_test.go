package session_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rsinghcodes/nutriai/internal/db"
	"github.com/rsinghcodes/nutriai/internal/model"
	"github.com/rsinghcodes/nutriai/internal/session"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "nutriai.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func TestStoreRoundTripsTokenAndProfile(t *testing.T) {
	t.Parallel()

	store := session.NewStore(newTestDB(t))
	user := model.User{ID: 7, Email: "jo@example.com", Name: "Jo", IsOnboarded: true}

	if err := store.Save("tok-abc", user); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok-abc" {
		t.Fatalf("expected token tok-abc, got %q", token)
	}
	if loaded == nil || loaded.ID != 7 || loaded.Email != "jo@example.com" || !loaded.IsOnboarded {
		t.Fatalf("unexpected loaded user: %+v", loaded)
	}
}

func TestStoreSaveReplacesPreviousPair(t *testing.T) {
	t.Parallel()

	store := session.NewStore(newTestDB(t))
	if err := store.Save("first", model.User{ID: 1}); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := store.Save("second", model.User{ID: 2}); err != nil {
		t.Fatalf("save second: %v", err)
	}

	token, user, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "second" || user == nil || user.ID != 2 {
		t.Fatalf("expected the second pair, got token=%q user=%+v", token, user)
	}
}

func TestStoreClearIsIdempotent(t *testing.T) {
	t.Parallel()

	store := session.NewStore(newTestDB(t))
	if err := store.Clear(); err != nil {
		t.Fatalf("clear empty store: %v", err)
	}

	if err := store.Save("tok", model.User{ID: 1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("first clear: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}

	token, user, err := store.Load()
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if token != "" || user != nil {
		t.Fatalf("expected empty store, got token=%q user=%+v", token, user)
	}
}

func TestStoreRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	store := session.NewStore(newTestDB(t))
	if err := store.Save("", model.User{ID: 1}); err == nil {
		t.Fatalf("expected error saving empty token")
	}
}
