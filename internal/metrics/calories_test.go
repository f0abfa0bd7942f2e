package metrics_test

import (
	"testing"

	"github.com/rsinghcodes/nutriai/internal/metrics"
)

func TestEstimateTimeBasedWorkout(t *testing.T) {
	t.Parallel()

	got := metrics.EstimateWorkoutCalories("minutes", 30, 0, 0, 5)
	if got != 150 {
		t.Fatalf("expected 150 kcal for 30 min at 5/min, got %v", got)
	}
}

func TestEstimateRepBasedWorkout(t *testing.T) {
	t.Parallel()

	got := metrics.EstimateWorkoutCalories("reps", 0, 3, 10, 0.5)
	if got != 15 {
		t.Fatalf("expected 15 kcal for 3x10 at 0.5/rep, got %v", got)
	}
}

func TestEstimateMissingInputsYieldZero(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                string
		unit                string
		minutes, sets, reps int
		perUnit             float64
	}{
		{"no duration", "minutes", 0, 0, 0, 5},
		{"no sets", "reps", 0, 0, 10, 0.5},
		{"no reps", "reps", 0, 3, 0, 0.5},
		{"no rate", "minutes", 30, 0, 0, 0},
	}
	for _, tc := range cases {
		if got := metrics.EstimateWorkoutCalories(tc.unit, tc.minutes, tc.sets, tc.reps, tc.perUnit); got != 0 {
			t.Fatalf("%s: expected 0, got %v", tc.name, got)
		}
	}
}
