package repositories

import (
	"context"
	"errors"

	"arogya/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressEntry, error)
	Insert(ctx context.Context, entry *db_models.ProgressEntry) error
	FindByID(ctx context.Context, userID uuid.UUID, id string) (*db_models.ProgressEntry, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressEntry, error) {
	var entries []db_models.ProgressEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at desc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *progressRepository) Insert(ctx context.Context, entry *db_models.ProgressEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *progressRepository) FindByID(ctx context.Context, userID uuid.UUID, id string) (*db_models.ProgressEntry, error) {
	var entry db_models.ProgressEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
