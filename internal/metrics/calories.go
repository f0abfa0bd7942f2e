package metrics

// EstimateWorkoutCalories previews the calories for a workout log before it
// is submitted. Time-based units multiply duration by the per-unit rate;
// rep-based units multiply sets by reps per set by the rate. Missing or
// non-positive required inputs yield 0; the server-computed value on the
// created entry is authoritative.
func EstimateWorkoutCalories(unit string, durationMinutes, sets, repsPerSet int, caloriesPerUnit float64) float64 {
	if caloriesPerUnit <= 0 {
		return 0
	}
	if unit == "minutes" {
		if durationMinutes <= 0 {
			return 0
		}
		return float64(durationMinutes) * caloriesPerUnit
	}
	if sets <= 0 || repsPerSet <= 0 {
		return 0
	}
	return float64(sets) * float64(repsPerSet) * caloriesPerUnit
}
