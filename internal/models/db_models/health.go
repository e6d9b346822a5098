package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// HealthAssessment keeps one row per user; submissions after the first
// update the existing row in place (latest write wins).
type HealthAssessment struct {
	BaseModel
	UserID                uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	Age                   *int           `json:"age,omitempty"`
	Gender                *string        `json:"gender,omitempty"`
	HeightCm              *float64       `json:"height_cm,omitempty"`
	WeightKg              *float64       `json:"weight_kg,omitempty"`
	BMI                   *float64       `json:"bmi,omitempty"`
	BMICategory           *string        `json:"bmi_category,omitempty"`
	HealthConditions      pq.StringArray `gorm:"type:text[]" json:"health_conditions,omitempty"`
	Injuries              pq.StringArray `gorm:"type:text[]" json:"injuries,omitempty"`
	SleepHours            *float64       `json:"sleep_hours,omitempty"`
	StressLevel           *string        `json:"stress_level,omitempty"`
	ActivityLevel         *string        `json:"activity_level,omitempty"`
	FitnessGoal           *string        `json:"fitness_goal,omitempty"`
	FitnessLevel          *string        `json:"fitness_level,omitempty"`
	WorkoutPreference     *string        `json:"workout_preference,omitempty"`
	WorkoutTimePreference *string        `json:"workout_time_preference,omitempty"`
	DietaryPreference     *string        `json:"dietary_preference,omitempty"`
	Notes                 *string        `json:"notes,omitempty"`
}
