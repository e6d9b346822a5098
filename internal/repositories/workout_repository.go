package repositories

import (
	"context"
	"errors"

	"arogya/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkoutRepository interface {
	ListPlansByUser(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutPlan, error)
	InsertPlan(ctx context.Context, plan *db_models.WorkoutPlan) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Workout, error)
	Insert(ctx context.Context, workout *db_models.Workout) error
	FindByID(ctx context.Context, userID uuid.UUID, id string) (*db_models.Workout, error)
	Update(ctx context.Context, workout *db_models.Workout) error
	Count(ctx context.Context) (int64, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) ListPlansByUser(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutPlan, error) {
	var plans []db_models.WorkoutPlan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *workoutRepository) InsertPlan(ctx context.Context, plan *db_models.WorkoutPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *workoutRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Workout, error) {
	var workouts []db_models.Workout
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *workoutRepository) Insert(ctx context.Context, workout *db_models.Workout) error {
	return r.db.WithContext(ctx).Create(workout).Error
}

// FindByID filters by owner so another user's workout reads as absent.
func (r *workoutRepository) FindByID(ctx context.Context, userID uuid.UUID, id string) (*db_models.Workout, error) {
	var workout db_models.Workout
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) Update(ctx context.Context, workout *db_models.Workout) error {
	return r.db.WithContext(ctx).Save(workout).Error
}

func (r *workoutRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Workout{}).Count(&count).Error
	return count, err
}
