package model

// User is the profile returned by the backend. Optional physiological
// attributes are pointers so a fresh (pre-onboarding) account can be told
// apart from one with zero values.
type User struct {
	ID           int64    `json:"id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	IsOnboarded  bool     `json:"is_onboarded"`
	Age          *int     `json:"age,omitempty"`
	Gender       string   `json:"gender,omitempty"`
	HeightCm     *float64 `json:"height_cm,omitempty"`
	WeightKg     *float64 `json:"weight_kg,omitempty"`
	DietaryPrefs []string `json:"dietary_prefs,omitempty"`
	Goals        string   `json:"goals,omitempty"`
	TargetWeight *float64 `json:"target_weight,omitempty"`
	BMI          *float64 `json:"bmi,omitempty"`
}

// Food is a catalog item from /foods.
type Food struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Calories        float64 `json:"calories"`
	ProteinG        float64 `json:"protein"`
	CarbsG          float64 `json:"carbs"`
	FatG            float64 `json:"fats"`
	ReferenceAmount float64 `json:"reference_amount"`
	ReferenceUnit   string  `json:"reference_unit"`
}

// Workout is a catalog item from /workouts. Unit is either "minutes"
// (time-based) or "reps" (set/rep-based) and decides how a log entry is
// shaped and how the calorie preview is computed.
type Workout struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	MuscleGroup     string  `json:"muscle_group"`
	Difficulty      string  `json:"difficulty"`
	Unit            string  `json:"unit"`
	CaloriesPerUnit float64 `json:"calories_per_unit"`
}

// FoodLog is a server-created log entry. Nutrition values are computed
// server-side from the catalog item and quantity; the client never edits an
// entry after creation.
type FoodLog struct {
	ID       int64   `json:"id"`
	FoodID   int64   `json:"food_id"`
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein"`
	CarbsG   float64 `json:"carbs"`
	FatG     float64 `json:"fats"`
	LoggedAt string  `json:"logged_at"`
}

// WorkoutLog is a server-created workout entry. Exactly one of
// DurationMinutes or Sets/RepsPerSet is populated depending on the workout
// unit.
type WorkoutLog struct {
	ID              int64   `json:"id"`
	WorkoutID       int64   `json:"workout_id"`
	WorkoutName     string  `json:"workout_name"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Sets            *int    `json:"sets,omitempty"`
	RepsPerSet      *int    `json:"reps_per_set,omitempty"`
	CaloriesBurned  float64 `json:"calories_burned"`
	LoggedAt        string  `json:"logged_at"`
}

// DailyFood is one row of /food-logs/summary.
type DailyFood struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein"`
	CarbsG   float64 `json:"carbs"`
	FatG     float64 `json:"fats"`
}

type FoodSummary struct {
	Daily         []DailyFood `json:"daily"`
	TotalCalories float64     `json:"total_calories"`
}

// DailyWorkout is one row of /workout-logs/summary.
type DailyWorkout struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Workouts int     `json:"workouts"`
}

type WorkoutSummary struct {
	Daily         []DailyWorkout `json:"daily"`
	TotalWorkouts int            `json:"total_workouts"`
}

// Plan is a stored AI meal plan as listed by /plans.
type Plan struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// PlanDetail is the full plan from /plans/{id}.
type PlanDetail struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Days        []PlanDay `json:"days"`
}

type PlanDay struct {
	Day   string     `json:"day"`
	Meals []PlanMeal `json:"meals"`
}

type PlanMeal struct {
	Meal  string     `json:"meal"`
	Items []PlanItem `json:"items"`
}

type PlanItem struct {
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// TrendPoint is one row of /dashboard/trends.
type TrendPoint struct {
	Date     string  `json:"date"`
	Consumed float64 `json:"consumed"`
	Burned   float64 `json:"burned"`
	Net      float64 `json:"net"`
}

type WaterToday struct {
	AmountMl int `json:"amount"`
}

type StepsToday struct {
	Steps int `json:"steps"`
}
