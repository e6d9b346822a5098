package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"arogya/internal/models/db_models"
	"arogya/internal/models/request_models"
	"arogya/internal/repositories"
	"arogya/pkg/utils"
)

type ProgressServiceInterface interface {
	ListEntries(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressEntry, error)
	CreateEntry(ctx context.Context, userID uuid.UUID, request request_models.CreateProgressRequest) (*db_models.ProgressEntry, error)
	GetEntry(ctx context.Context, userID uuid.UUID, id string) (*db_models.ProgressEntry, error)
}

type ProgressService struct {
	progressRepo repositories.ProgressRepository
}

func NewProgressService(progressRepo repositories.ProgressRepository) ProgressServiceInterface {
	return &ProgressService{progressRepo: progressRepo}
}

func (p *ProgressService) ListEntries(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressEntry, error) {
	entries, err := p.progressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

func (p *ProgressService) CreateEntry(ctx context.Context, userID uuid.UUID, request request_models.CreateProgressRequest) (*db_models.ProgressEntry, error) {
	entry := &db_models.ProgressEntry{
		UserID:     userID,
		EntryType:  request.EntryType,
		Value:      request.Value,
		Unit:       request.Unit,
		Notes:      request.Notes,
		RecordedAt: time.Now().Unix(),
	}
	if len(request.Metadata) > 0 {
		entry.Metadata = datatypes.JSON(request.Metadata)
	}
	if err := p.progressRepo.Insert(ctx, entry); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entry, nil
}

func (p *ProgressService) GetEntry(ctx context.Context, userID uuid.UUID, id string) (*db_models.ProgressEntry, error) {
	// Malformed ids read as absent rather than reaching the uuid column.
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrProgressNotFound
	}
	entry, err := p.progressRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if entry == nil {
		return nil, utils.ErrProgressNotFound
	}
	return entry, nil
}
