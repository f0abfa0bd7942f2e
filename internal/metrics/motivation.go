package metrics

// FoodMotivation picks the encouragement line for a food summary covering
// the given number of days. The consistency bar is 80% of a 2000 kcal/day
// baseline.
func FoodMotivation(totalCalories float64, days int) string {
	switch {
	case totalCalories > float64(days)*2000*0.8:
		return "Great job keeping your nutrition consistent!"
	case totalCalories > 0:
		return "Nice progress! Keep logging your meals."
	default:
		return "Start by logging your first meal today!"
	}
}

// WorkoutMotivation picks the encouragement line for a workout summary. The
// consistency bar is working out on 60% of the covered days.
func WorkoutMotivation(totalWorkouts, days int) string {
	switch {
	case float64(totalWorkouts) > float64(days)*0.6:
		return "Amazing consistency! Keep going strong."
	case totalWorkouts > 0:
		return "You're building momentum, keep pushing!"
	default:
		return "Start small, even one workout makes a difference!"
	}
}
