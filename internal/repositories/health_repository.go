package repositories

import (
	"context"
	"errors"

	"arogya/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*db_models.HealthAssessment, error)
	Insert(ctx context.Context, assessment *db_models.HealthAssessment) error
	Update(ctx context.Context, assessment *db_models.HealthAssessment) error
}

type healthRepository struct {
	db *gorm.DB
}

func NewHealthRepository(db *gorm.DB) HealthRepository {
	return &healthRepository{db: db}
}

func (r *healthRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*db_models.HealthAssessment, error) {
	var assessment db_models.HealthAssessment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&assessment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assessment, nil
}

func (r *healthRepository) Insert(ctx context.Context, assessment *db_models.HealthAssessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}

func (r *healthRepository) Update(ctx context.Context, assessment *db_models.HealthAssessment) error {
	return r.db.WithContext(ctx).Save(assessment).Error
}
