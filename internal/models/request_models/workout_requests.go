package request_models

import "encoding/json"

type CreateWorkoutPlanRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Difficulty      string          `json:"difficulty"`
	DurationMinutes int             `json:"duration_minutes"`
	PlanData        json.RawMessage `json:"plan_data"` // { daily_workouts, weekly_summary, tips }
}

type CreateWorkoutRequest struct {
	PlanID          string          `json:"plan_id"`
	Name            string          `json:"name" binding:"required"`
	Exercises       json.RawMessage `json:"exercises"`
	DurationMinutes int             `json:"duration_minutes"`
	Notes           string          `json:"notes"`
}

type CompleteWorkoutRequest struct {
	WorkoutID       string `json:"workout_id" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
}
