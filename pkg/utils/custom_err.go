package utils

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
	ErrAdminOnly          = errors.New("admin only")

	ErrWorkoutNotFound       = errors.New("workout not found")
	ErrWorkoutPlanNotFound   = errors.New("workout plan not found")
	ErrNutritionPlanNotFound = errors.New("nutrition plan not found")
	ErrMealNotFound          = errors.New("meal not found")
	ErrProgressNotFound      = errors.New("progress entry not found")
	ErrSessionNotFound       = errors.New("chat session not found")

	ErrCoachUnavailable = errors.New("coach model unavailable")
	ErrDatabaseError    = errors.New("database error")
)
