package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rsinghcodes/nutriai/internal/model"
)

// GeneratePlan asks the backend to generate an AI meal plan covering the
// given number of days and returns the stored plan.
func (c *Client) GeneratePlan(ctx context.Context, days int) (model.PlanDetail, error) {
	params := url.Values{"days": {strconv.Itoa(days)}}
	var plan model.PlanDetail
	if err := c.post(ctx, "/generate-plan", params, nil, &plan); err != nil {
		return model.PlanDetail{}, err
	}
	return plan, nil
}

func (c *Client) Plans(ctx context.Context) ([]model.Plan, error) {
	var plans []model.Plan
	if err := c.get(ctx, "/plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *Client) Plan(ctx context.Context, id int64) (model.PlanDetail, error) {
	var plan model.PlanDetail
	if err := c.get(ctx, fmt.Sprintf("/plans/%d", id), nil, &plan); err != nil {
		return model.PlanDetail{}, err
	}
	return plan, nil
}
