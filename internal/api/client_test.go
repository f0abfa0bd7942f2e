package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// memTokens is an in-memory TokenSource for transport tests.
type memTokens struct {
	token   string
	cleared int
}

func (m *memTokens) Token() (string, error) { return m.token, nil }

func (m *memTokens) ClearToken() error {
	m.token = ""
	m.cleared++
	return nil
}

func TestRequestCarriesBearerTokenFromStore(t *testing.T) {
	t.Parallel()

	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1, "email": "a@b.c", "name": "A", "is_onboarded": true}`))
	}))
	defer ts.Close()

	tokens := &memTokens{token: "tok-123"}
	c := New(ts.URL, 0, tokens, nil)

	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("fetch profile: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestRequestWithoutStoredTokenIsUnauthenticated(t *testing.T) {
	t.Parallel()

	var hadAuth bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "t", "user": {"id": 1}}`))
	}))
	defer ts.Close()

	c := New(ts.URL, 0, &memTokens{}, nil)
	if _, err := c.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if hadAuth {
		t.Fatalf("expected no authorization header on unauthenticated request")
	}
}

func TestAuthFailureClearsStoredToken(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "token expired"}`))
	}))
	defer ts.Close()

	tokens := &memTokens{token: "stale"}
	c := New(ts.URL, 0, tokens, nil)

	_, err := c.Me(context.Background())
	if !IsAuth(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if tokens.token != "" || tokens.cleared != 1 {
		t.Fatalf("expected token cleared exactly once, got token=%q cleared=%d", tokens.token, tokens.cleared)
	}
}

func TestValidationErrorCarriesServerDetail(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": "quantity must be positive"}`))
	}))
	defer ts.Close()

	tokens := &memTokens{token: "tok"}
	c := New(ts.URL, 0, tokens, nil)

	_, err := c.LogFood(context.Background(), FoodLogInput{FoodID: 1, Quantity: -1, Unit: "g"})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "quantity must be positive" {
		t.Fatalf("expected server detail verbatim, got %q", err.Error())
	}
	if tokens.cleared != 0 {
		t.Fatalf("validation failure must not clear the token")
	}
}

func TestServerErrorKind(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := New(ts.URL, 0, &memTokens{token: "tok"}, nil)
	_, err := c.Plans(context.Background())
	if !IsServer(err) {
		t.Fatalf("expected server error, got %v", err)
	}
}

func TestSlowResponseFailsWithTimeout(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer ts.Close()

	c := New(ts.URL, 50*time.Millisecond, &memTokens{}, nil)
	_, err := c.Me(context.Background())
	if !IsTimeout(err) {
		t.Fatalf("expected timeout error, got %v", err)
	}
	if !IsNetwork(err) {
		t.Fatalf("timeout should classify as network failure, got %v", err)
	}
}
