package services

import (
	"context"

	"github.com/google/uuid"

	"arogya/internal/models/db_models"
	"arogya/internal/models/request_models"
	"arogya/internal/repositories"
	"arogya/pkg/utils"
)

type HealthServiceInterface interface {
	GetAssessment(ctx context.Context, userID uuid.UUID) (*db_models.HealthAssessment, error)
	UpsertAssessment(ctx context.Context, userID uuid.UUID, request request_models.UpsertAssessmentRequest) (*db_models.HealthAssessment, bool, error)
}

type HealthService struct {
	healthRepo repositories.HealthRepository
}

func NewHealthService(healthRepo repositories.HealthRepository) HealthServiceInterface {
	return &HealthService{healthRepo: healthRepo}
}

// GetAssessment returns the user's assessment or nil when none exists.
func (h *HealthService) GetAssessment(ctx context.Context, userID uuid.UUID) (*db_models.HealthAssessment, error) {
	assessment, err := h.healthRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return assessment, nil
}

// UpsertAssessment keeps one row per user. An existing row takes only
// the fields the request actually carries; the returned bool reports
// whether an update (true) or an insert (false) happened.
func (h *HealthService) UpsertAssessment(ctx context.Context, userID uuid.UUID, request request_models.UpsertAssessmentRequest) (*db_models.HealthAssessment, bool, error) {
	existing, err := h.healthRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, false, utils.ErrDatabaseError
	}

	if existing != nil {
		applyAssessmentFields(existing, request)
		if err := h.healthRepo.Update(ctx, existing); err != nil {
			return nil, false, utils.ErrDatabaseError
		}
		return existing, true, nil
	}

	assessment := &db_models.HealthAssessment{UserID: userID}
	applyAssessmentFields(assessment, request)
	if err := h.healthRepo.Insert(ctx, assessment); err != nil {
		return nil, false, utils.ErrDatabaseError
	}
	return assessment, false, nil
}

func applyAssessmentFields(a *db_models.HealthAssessment, r request_models.UpsertAssessmentRequest) {
	if r.Age != nil {
		a.Age = r.Age
	}
	if r.Gender != nil {
		a.Gender = r.Gender
	}
	if r.HeightCm != nil {
		a.HeightCm = r.HeightCm
	}
	if r.WeightKg != nil {
		a.WeightKg = r.WeightKg
	}
	if r.BMI != nil {
		a.BMI = r.BMI
	}
	if r.BMICategory != nil {
		a.BMICategory = r.BMICategory
	}
	if r.HealthConditions != nil {
		a.HealthConditions = r.HealthConditions
	}
	if r.Injuries != nil {
		a.Injuries = r.Injuries
	}
	if r.SleepHours != nil {
		a.SleepHours = r.SleepHours
	}
	if r.StressLevel != nil {
		a.StressLevel = r.StressLevel
	}
	if r.ActivityLevel != nil {
		a.ActivityLevel = r.ActivityLevel
	}
	if r.FitnessGoal != nil {
		a.FitnessGoal = r.FitnessGoal
	}
	if r.FitnessLevel != nil {
		a.FitnessLevel = r.FitnessLevel
	}
	if r.WorkoutPreference != nil {
		a.WorkoutPreference = r.WorkoutPreference
	}
	if r.WorkoutTimePreference != nil {
		a.WorkoutTimePreference = r.WorkoutTimePreference
	}
	if r.DietaryPreference != nil {
		a.DietaryPreference = r.DietaryPreference
	}
	if r.Notes != nil {
		a.Notes = r.Notes
	}
}
