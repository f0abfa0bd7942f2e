package api

import (
	"context"
	"fmt"

	"github.com/rsinghcodes/nutriai/internal/model"
)

// Credentials is the login/register response: the bearer token plus the
// authenticated user.
type Credentials struct {
	AccessToken string     `json:"access_token"`
	User        model.User `json:"user"`
}

// OnboardingInput is the one-time profile-completion payload.
type OnboardingInput struct {
	Age          int      `json:"age"`
	WeightKg     float64  `json:"weight_kg"`
	HeightCm     float64  `json:"height_cm"`
	Gender       string   `json:"gender"`
	DietaryPrefs []string `json:"dietary_prefs"`
	Goals        string   `json:"goals"`
}

func (c *Client) Login(ctx context.Context, email, password string) (Credentials, error) {
	var creds Credentials
	body := map[string]string{"email": email, "password": password}
	if err := c.post(ctx, "/auth/login", nil, body, &creds); err != nil {
		return Credentials{}, err
	}
	if creds.AccessToken == "" {
		return Credentials{}, fmt.Errorf("login response carried no access token")
	}
	return creds, nil
}

func (c *Client) Register(ctx context.Context, email, name, password string) (Credentials, error) {
	var creds Credentials
	body := map[string]string{"email": email, "name": name, "password": password}
	if err := c.post(ctx, "/auth/register", nil, body, &creds); err != nil {
		return Credentials{}, err
	}
	if creds.AccessToken == "" {
		return Credentials{}, fmt.Errorf("register response carried no access token")
	}
	return creds, nil
}

// CompleteOnboarding submits the profile-completion step. Callers re-fetch
// /user/me afterwards for the updated profile.
func (c *Client) CompleteOnboarding(ctx context.Context, in OnboardingInput) error {
	return c.post(ctx, "/auth/onboarding", nil, in, nil)
}
