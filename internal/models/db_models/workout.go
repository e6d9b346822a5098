package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WorkoutPlan struct {
	BaseModel
	UserID          uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	Difficulty      string         `json:"difficulty,omitempty"` // beginner, intermediate, advanced
	DurationMinutes int            `json:"duration_minutes,omitempty"`
	PlanData        datatypes.JSON `json:"plan_data,omitempty"` // { daily_workouts, weekly_summary, tips }
}

type Workout struct {
	BaseModel
	UserID          uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	PlanID          *uuid.UUID     `gorm:"type:uuid" json:"plan_id,omitempty"`
	Name            string         `json:"name"`
	Exercises       datatypes.JSON `json:"exercises,omitempty"` // list of {name, sets, reps, video_id, ...}
	CompletedAt     *int64         `json:"completed_at,omitempty"`
	DurationMinutes int            `json:"duration_minutes,omitempty"`
	Notes           string         `json:"notes,omitempty"`
}
