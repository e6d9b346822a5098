package request_models

// UpsertAssessmentRequest uses pointer fields so a partial submission
// only touches the fields it actually carries.
type UpsertAssessmentRequest struct {
	Age                   *int     `json:"age"`
	Gender                *string  `json:"gender"`
	HeightCm              *float64 `json:"height_cm"`
	WeightKg              *float64 `json:"weight_kg"`
	BMI                   *float64 `json:"bmi"`
	BMICategory           *string  `json:"bmi_category"`
	HealthConditions      []string `json:"health_conditions"`
	Injuries              []string `json:"injuries"`
	SleepHours            *float64 `json:"sleep_hours"`
	StressLevel           *string  `json:"stress_level"`
	ActivityLevel         *string  `json:"activity_level"`
	FitnessGoal           *string  `json:"fitness_goal"`
	FitnessLevel          *string  `json:"fitness_level"`
	WorkoutPreference     *string  `json:"workout_preference"`
	WorkoutTimePreference *string  `json:"workout_time_preference"`
	DietaryPreference     *string  `json:"dietary_preference"`
	Notes                 *string  `json:"notes"`
}
