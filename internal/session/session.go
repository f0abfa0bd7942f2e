package session

import (
	"context"
	"fmt"

	"github.com/rsinghcodes/nutriai/internal/api"
	"github.com/rsinghcodes/nutriai/internal/model"
)

// Stage is where the user stands in the authentication lifecycle. It drives
// which commands are allowed to run.
type Stage int

const (
	// StageUnauthenticated: no token, no user.
	StageUnauthenticated Stage = iota
	// StageOnboarding: authenticated but the one-time profile-completion
	// step has not been done; only onboarding (and logout) may proceed.
	StageOnboarding
	// StageReady: authenticated and onboarded.
	StageReady
)

func (s Stage) String() string {
	switch s {
	case StageOnboarding:
		return "onboarding"
	case StageReady:
		return "ready"
	default:
		return "unauthenticated"
	}
}

// Session is the single source of truth for "is a user logged in, and are
// they onboarded". It orchestrates the token store and the API client; the
// command layer reads Stage() to gate operations.
type Session struct {
	client *api.Client
	store  *Store
	token  string
	user   *model.User
}

func New(client *api.Client, store *Store) *Session {
	return &Session{client: client, store: store}
}

// Resume loads persisted credentials at process start. With nothing stored
// the session stays unauthenticated; this is not an error.
func (s *Session) Resume() error {
	token, user, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("resume session: %w", err)
	}
	s.token = token
	s.user = user
	return nil
}

func (s *Session) Stage() Stage {
	switch {
	case s.token == "" || s.user == nil:
		return StageUnauthenticated
	case !s.user.IsOnboarded:
		return StageOnboarding
	default:
		return StageReady
	}
}

// User returns the current profile, or nil when unauthenticated.
func (s *Session) User() *model.User { return s.user }

// Token returns the current bearer token. It is only for display-adjacent
// introspection (auth status); requests read the store directly.
func (s *Session) Token() string { return s.token }

// Login authenticates and persists the credential pair. On failure the
// session remains unauthenticated and the server's error detail surfaces to
// the caller.
func (s *Session) Login(ctx context.Context, email, password string) error {
	creds, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.observe(err)
		return err
	}
	return s.adopt(creds)
}

// Register creates an account. New users are never pre-onboarded, so a
// successful registration always lands in StageOnboarding.
func (s *Session) Register(ctx context.Context, email, name, password string) error {
	creds, err := s.client.Register(ctx, email, name, password)
	if err != nil {
		s.observe(err)
		return err
	}
	creds.User.IsOnboarded = false
	return s.adopt(creds)
}

// CompleteOnboarding submits the profile-completion step, re-fetches the
// profile, and persists it.
func (s *Session) CompleteOnboarding(ctx context.Context, in api.OnboardingInput) error {
	if err := s.client.CompleteOnboarding(ctx, in); err != nil {
		s.observe(err)
		return err
	}
	return s.RefreshUser(ctx)
}

// RefreshUser replaces the cached profile wholesale from /user/me and
// persists the result.
func (s *Session) RefreshUser(ctx context.Context) error {
	user, err := s.client.Me(ctx)
	if err != nil {
		s.observe(err)
		return err
	}
	s.user = &user
	if err := s.store.Save(s.token, user); err != nil {
		return err
	}
	return nil
}

// Logout clears the store and the in-memory state unconditionally.
func (s *Session) Logout() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.token = ""
	s.user = nil
	return nil
}

// Observe lets callers report errors from their own API calls so an
// authentication failure force-drops the in-memory state (the store is
// already cleared by the client).
func (s *Session) Observe(err error) { s.observe(err) }

func (s *Session) observe(err error) {
	if api.IsAuth(err) {
		s.token = ""
		s.user = nil
	}
}

func (s *Session) adopt(creds api.Credentials) error {
	if err := s.store.Save(creds.AccessToken, creds.User); err != nil {
		return err
	}
	s.token = creds.AccessToken
	user := creds.User
	s.user = &user
	return nil
}
