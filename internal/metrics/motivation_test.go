package metrics_test

import (
	"strings"
	"testing"

	"github.com/rsinghcodes/nutriai/internal/metrics"
)

func TestFoodMotivationTiers(t *testing.T) {
	t.Parallel()

	// 7 days at the 2000 kcal baseline: the consistency bar is 11200.
	if msg := metrics.FoodMotivation(12000, 7); !strings.Contains(msg, "consistent") {
		t.Fatalf("expected consistency message above the bar, got %q", msg)
	}
	if msg := metrics.FoodMotivation(500, 7); !strings.Contains(msg, "progress") {
		t.Fatalf("expected progress message for partial logging, got %q", msg)
	}
	if msg := metrics.FoodMotivation(0, 7); !strings.Contains(msg, "first meal") {
		t.Fatalf("expected starter message for zero calories, got %q", msg)
	}
}

func TestWorkoutMotivationTiers(t *testing.T) {
	t.Parallel()

	// 7 days: the consistency bar is more than 4.2 workouts.
	if msg := metrics.WorkoutMotivation(5, 7); !strings.Contains(msg, "consistency") {
		t.Fatalf("expected consistency message above the bar, got %q", msg)
	}
	if msg := metrics.WorkoutMotivation(2, 7); !strings.Contains(msg, "momentum") {
		t.Fatalf("expected momentum message for some workouts, got %q", msg)
	}
	if msg := metrics.WorkoutMotivation(0, 7); !strings.Contains(msg, "Start small") {
		t.Fatalf("expected starter message for zero workouts, got %q", msg)
	}
}
