package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rsinghcodes/nutriai/internal/model"
	"github.com/rsinghcodes/nutriai/internal/search"
)

type foodPage struct {
	Items []model.Food `json:"items"`
	Total int          `json:"total"`
}

// SearchFoods fetches one page of the food catalog. It satisfies
// search.Fetch[model.Food]; the /foods endpoint paginates by page/per_page
// and filters on calorie bounds.
func (c *Client) SearchFoods(ctx context.Context, q search.Query, page, perPage int) ([]model.Food, int, error) {
	params := url.Values{}
	if q.Text != "" {
		params.Set("search", q.Text)
	}
	if q.SortBy != "" {
		params.Set("sort_by", q.SortBy)
	}
	if q.Order != "" {
		params.Set("order", q.Order)
	}
	for _, name := range []string{"min_calories", "max_calories"} {
		if v, ok := q.Filters[name]; ok {
			params.Set(name, v)
		}
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))

	var resp foodPage
	if err := c.get(ctx, "/foods", params, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Items, resp.Total, nil
}

// FoodLogInput references a catalog item plus the consumed quantity. The
// server computes the nutrition values.
type FoodLogInput struct {
	FoodID   int64   `json:"food_id"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

func (c *Client) LogFood(ctx context.Context, in FoodLogInput) (model.FoodLog, error) {
	var entry model.FoodLog
	if err := c.post(ctx, "/food-logs", nil, in, &entry); err != nil {
		return model.FoodLog{}, err
	}
	return entry, nil
}

// FoodLogs lists entries, optionally restricted to one date (YYYY-MM-DD).
func (c *Client) FoodLogs(ctx context.Context, date string) ([]model.FoodLog, error) {
	var params url.Values
	if date != "" {
		params = url.Values{"date": {date}}
	}
	var logs []model.FoodLog
	if err := c.get(ctx, "/food-logs", params, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) FoodSummary(ctx context.Context, days int) (model.FoodSummary, error) {
	params := url.Values{"days": {strconv.Itoa(days)}}
	var summary model.FoodSummary
	if err := c.get(ctx, "/food-logs/summary", params, &summary); err != nil {
		return model.FoodSummary{}, err
	}
	return summary, nil
}
