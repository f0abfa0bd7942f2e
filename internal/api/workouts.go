package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rsinghcodes/nutriai/internal/model"
	"github.com/rsinghcodes/nutriai/internal/search"
)

type workoutPage struct {
	Items []model.Workout `json:"items"`
	Total int             `json:"total"`
}

// SearchWorkouts fetches one page of the exercise catalog. It satisfies
// search.Fetch[model.Workout]; unlike /foods, the /workouts endpoint
// paginates by limit/offset, so the page number is translated here.
func (c *Client) SearchWorkouts(ctx context.Context, q search.Query, page, perPage int) ([]model.Workout, int, error) {
	params := url.Values{}
	if q.Text != "" {
		params.Set("search", q.Text)
	}
	if q.SortBy != "" {
		params.Set("sort", q.SortBy)
	}
	for _, name := range []string{"muscle_group", "difficulty"} {
		if v, ok := q.Filters[name]; ok {
			params.Set(name, v)
		}
	}
	params.Set("limit", strconv.Itoa(perPage))
	params.Set("offset", strconv.Itoa((page-1)*perPage))

	var resp workoutPage
	if err := c.get(ctx, "/workouts", params, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Items, resp.Total, nil
}

// WorkoutLogInput references an exercise plus either a duration (time-based
// units) or sets and reps (rep-based units).
type WorkoutLogInput struct {
	WorkoutID       int64 `json:"workout_id"`
	DurationMinutes *int  `json:"duration_minutes,omitempty"`
	Sets            *int  `json:"sets,omitempty"`
	RepsPerSet      *int  `json:"reps_per_set,omitempty"`
}

func (c *Client) LogWorkout(ctx context.Context, in WorkoutLogInput) (model.WorkoutLog, error) {
	var entry model.WorkoutLog
	if err := c.post(ctx, "/workout-logs", nil, in, &entry); err != nil {
		return model.WorkoutLog{}, err
	}
	return entry, nil
}

// WorkoutLogs lists entries, optionally restricted to one date (YYYY-MM-DD).
func (c *Client) WorkoutLogs(ctx context.Context, date string) ([]model.WorkoutLog, error) {
	var params url.Values
	if date != "" {
		params = url.Values{"date": {date}}
	}
	var logs []model.WorkoutLog
	if err := c.get(ctx, "/workout-logs", params, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) WorkoutSummary(ctx context.Context, days int) (model.WorkoutSummary, error) {
	params := url.Values{"days": {strconv.Itoa(days)}}
	var summary model.WorkoutSummary
	if err := c.get(ctx, "/workout-logs/summary", params, &summary); err != nil {
		return model.WorkoutSummary{}, err
	}
	return summary, nil
}
