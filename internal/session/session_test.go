package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsinghcodes/nutriai/internal/api"
	"github.com/rsinghcodes/nutriai/internal/model"
	"github.com/rsinghcodes/nutriai/internal/session"
)

// fakeBackend implements the auth endpoints with one hard-coded account.
type fakeBackend struct {
	onboarded bool
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-login",
			"user":         b.user(),
		})
	})
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		b.onboarded = false
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-register",
			"user":         b.user(),
		})
	})
	mux.HandleFunc("POST /auth/onboarding", func(w http.ResponseWriter, r *http.Request) {
		b.onboarded = true
		_ = json.NewEncoder(w).Encode(b.user())
	})
	mux.HandleFunc("GET /user/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "missing token"})
			return
		}
		_ = json.NewEncoder(w).Encode(b.user())
	})
	return mux
}

func (b *fakeBackend) user() model.User {
	return model.User{ID: 1, Email: "jo@example.com", Name: "Jo", IsOnboarded: b.onboarded}
}

func newTestSession(t *testing.T, backend *fakeBackend) (*session.Session, *session.Store) {
	t.Helper()
	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)
	store := session.NewStore(newTestDB(t))
	client := api.New(ts.URL, 0, store, nil)
	return session.New(client, store), store
}

func TestLoginTransitionsByOnboardingFlag(t *testing.T) {
	t.Parallel()

	sess, _ := newTestSession(t, &fakeBackend{onboarded: false})
	require.Equal(t, session.StageUnauthenticated, sess.Stage())

	require.NoError(t, sess.Login(context.Background(), "jo@example.com", "secret"))
	assert.Equal(t, session.StageOnboarding, sess.Stage())

	ready, _ := newTestSession(t, &fakeBackend{onboarded: true})
	require.NoError(t, ready.Login(context.Background(), "jo@example.com", "secret"))
	assert.Equal(t, session.StageReady, ready.Stage())
}

func TestFailedLoginStaysUnauthenticated(t *testing.T) {
	t.Parallel()

	sess, store := newTestSession(t, &fakeBackend{})
	err := sess.Login(context.Background(), "jo@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, api.IsAuth(err))
	assert.Equal(t, session.StageUnauthenticated, sess.Stage())

	token, user, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestRegisterAlwaysLandsInOnboarding(t *testing.T) {
	t.Parallel()

	sess, _ := newTestSession(t, &fakeBackend{})
	require.NoError(t, sess.Register(context.Background(), "jo@example.com", "Jo", "secret"))
	assert.Equal(t, session.StageOnboarding, sess.Stage())
}

func TestCompleteOnboardingRefreshesAndPersistsProfile(t *testing.T) {
	t.Parallel()

	sess, store := newTestSession(t, &fakeBackend{})
	require.NoError(t, sess.Register(context.Background(), "jo@example.com", "Jo", "secret"))

	err := sess.CompleteOnboarding(context.Background(), api.OnboardingInput{
		Age: 30, WeightKg: 70, HeightCm: 175, Gender: "female",
		DietaryPrefs: []string{"veg"}, Goals: "maintain healthy",
	})
	require.NoError(t, err)
	assert.Equal(t, session.StageReady, sess.Stage())

	_, user, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.IsOnboarded)
}

func TestLogoutThenResumeIsUnauthenticated(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{onboarded: true}
	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)

	sqldb := newTestDB(t)
	store := session.NewStore(sqldb)
	client := api.New(ts.URL, 0, store, nil)

	sess := session.New(client, store)
	require.NoError(t, sess.Login(context.Background(), "jo@example.com", "secret"))
	require.NoError(t, sess.Logout())

	// A fresh process start over the same store.
	resumed := session.New(api.New(ts.URL, 0, store, nil), store)
	require.NoError(t, resumed.Resume())
	assert.Equal(t, session.StageUnauthenticated, resumed.Stage())
	assert.Nil(t, resumed.User())
}

func TestResumeRestoresPersistedSession(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{onboarded: true}
	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)

	sqldb := newTestDB(t)
	store := session.NewStore(sqldb)
	first := session.New(api.New(ts.URL, 0, store, nil), store)
	require.NoError(t, first.Login(context.Background(), "jo@example.com", "secret"))

	second := session.New(api.New(ts.URL, 0, store, nil), store)
	require.NoError(t, second.Resume())
	assert.Equal(t, session.StageReady, second.Stage())
	require.NotNil(t, second.User())
	assert.Equal(t, "jo@example.com", second.User().Email)
}

func TestAuthFailureForcesUnauthenticated(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok",
			"user":         model.User{ID: 1, Email: "jo@example.com", IsOnboarded: true},
		})
	})
	mux.HandleFunc("GET /user/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "token revoked"})
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	store := session.NewStore(newTestDB(t))
	sess := session.New(api.New(ts.URL, 0, store, nil), store)
	require.NoError(t, sess.Login(context.Background(), "jo@example.com", "secret"))

	err := sess.RefreshUser(context.Background())
	require.True(t, api.IsAuth(err))
	assert.Equal(t, session.StageUnauthenticated, sess.Stage())

	token, _, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "401 must leave the store empty")
}
