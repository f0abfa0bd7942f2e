package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rsinghcodes/nutriai/internal/model"
)

type trendsResponse struct {
	Trends []model.TrendPoint `json:"trends"`
}

// Trends returns the daily consumed/burned/net calorie series for the last
// days days.
func (c *Client) Trends(ctx context.Context, days int) ([]model.TrendPoint, error) {
	params := url.Values{"days": {strconv.Itoa(days)}}
	var resp trendsResponse
	if err := c.get(ctx, "/dashboard/trends", params, &resp); err != nil {
		return nil, err
	}
	return resp.Trends, nil
}

func (c *Client) WaterToday(ctx context.Context) (model.WaterToday, error) {
	var water model.WaterToday
	if err := c.get(ctx, "/tracking/water/today", nil, &water); err != nil {
		return model.WaterToday{}, err
	}
	return water, nil
}

// LogWater records an intake increment in milliliters and returns the
// updated daily total.
func (c *Client) LogWater(ctx context.Context, amountMl int) (model.WaterToday, error) {
	var water model.WaterToday
	body := map[string]int{"amount": amountMl}
	if err := c.post(ctx, "/tracking/water", nil, body, &water); err != nil {
		return model.WaterToday{}, err
	}
	return water, nil
}

func (c *Client) StepsToday(ctx context.Context) (model.StepsToday, error) {
	var steps model.StepsToday
	if err := c.get(ctx, "/tracking/steps/today", nil, &steps); err != nil {
		return model.StepsToday{}, err
	}
	return steps, nil
}

// LogSteps records a step-count increment and returns the updated daily
// total.
func (c *Client) LogSteps(ctx context.Context, count int) (model.StepsToday, error) {
	var steps model.StepsToday
	body := map[string]int{"steps": count}
	if err := c.post(ctx, "/tracking/steps", nil, body, &steps); err != nil {
		return model.StepsToday{}, err
	}
	return steps, nil
}
