package repositories

import (
	"context"
	"errors"

	"arogya/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepository interface {
	FindSession(ctx context.Context, userID uuid.UUID, sessionID string) (*db_models.ChatSession, error)
	InsertSession(ctx context.Context, session *db_models.ChatSession) error
	TouchSession(ctx context.Context, sessionID uuid.UUID) error
	ListSessionsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ChatSession, error)

	InsertMessage(ctx context.Context, message *db_models.ChatMessage) error
	ListMessages(ctx context.Context, sessionID uuid.UUID) ([]db_models.ChatMessage, error)
	RecentMessages(ctx context.Context, sessionID uuid.UUID, limit int) ([]db_models.ChatMessage, error)

	CountSessions(ctx context.Context) (int64, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) FindSession(ctx context.Context, userID uuid.UUID, sessionID string) (*db_models.ChatSession, error) {
	var session db_models.ChatSession
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", sessionID, userID).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *chatRepository) InsertSession(ctx context.Context, session *db_models.ChatSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// TouchSession bumps updated_at so session lists sort by recency.
func (r *chatRepository) TouchSession(ctx context.Context, sessionID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.ChatSession{}).
		Where("id = ?", sessionID).
		Update("updated_at", gorm.Expr("EXTRACT(EPOCH FROM NOW())::bigint")).Error
}

func (r *chatRepository) ListSessionsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ChatSession, error) {
	var sessions []db_models.ChatSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *chatRepository) InsertMessage(ctx context.Context, message *db_models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *chatRepository) ListMessages(ctx context.Context, sessionID uuid.UUID) ([]db_models.ChatMessage, error) {
	var messages []db_models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("seq asc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// RecentMessages returns the newest `limit` messages of a session in
// oldest-to-newest order, ready to feed the model as a context window.
func (r *chatRepository) RecentMessages(ctx context.Context, sessionID uuid.UUID, limit int) ([]db_models.ChatMessage, error) {
	var messages []db_models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("seq desc").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *chatRepository) CountSessions(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.ChatSession{}).Count(&count).Error
	return count, err
}
