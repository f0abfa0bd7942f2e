package api

import (
	"context"

	"github.com/rsinghcodes/nutriai/internal/model"
)

// ProfileUpdate carries the fields PUT /user/me accepts. Nil fields are
// omitted and left unchanged server-side.
type ProfileUpdate struct {
	Name         *string  `json:"name,omitempty"`
	Age          *int     `json:"age,omitempty"`
	Gender       *string  `json:"gender,omitempty"`
	HeightCm     *float64 `json:"height_cm,omitempty"`
	WeightKg     *float64 `json:"weight_kg,omitempty"`
	DietaryPrefs []string `json:"dietary_prefs,omitempty"`
}

func (c *Client) Me(ctx context.Context) (model.User, error) {
	var user model.User
	if err := c.get(ctx, "/user/me", nil, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (c *Client) UpdateMe(ctx context.Context, in ProfileUpdate) (model.User, error) {
	var user model.User
	if err := c.put(ctx, "/user/me", in, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (c *Client) SetGoals(ctx context.Context, goals string, targetWeight float64) (model.User, error) {
	var user model.User
	body := map[string]any{"goals": goals, "target_weight": targetWeight}
	if err := c.post(ctx, "/user/goals", nil, body, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.delete(ctx, "/user")
}
