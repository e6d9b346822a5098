package services

import (
	"context"
	"log"

	"arogya/internal/models/db_models"
	"arogya/internal/models/response_models"
	"arogya/internal/repositories"
	"arogya/pkg/utils"
	"github.com/google/uuid"
)

// contextWindowSize bounds how much session history is handed to the
// model on each turn.
const contextWindowSize = 10

// sessionTitleLimit is how many characters of the first message become
// the session title.
const sessionTitleLimit = 80

const coachSystemPrompt = "You are AROMI, the AI health and fitness coach for ArogyaMitra. " +
	"Be warm, motivating, and evidence-based. Give concise, actionable advice. " +
	"When relevant, consider Indian wellness and cuisine."

const coachFallbackReply = "I'm sorry, I couldn't generate a response right now. " +
	"Please check your Groq API key and try again."

type CoachServiceInterface interface {
	Chat(ctx context.Context, userID uuid.UUID, message string, sessionID string) (*response_models.ChatResponse, error)
	ListSessions(ctx context.Context, userID uuid.UUID) ([]response_models.ChatSessionResponse, error)
	SessionMessages(ctx context.Context, userID uuid.UUID, sessionID string) ([]response_models.ChatMessageResponse, error)
}

type CoachService struct {
	chatRepo repositories.ChatRepository
	client   utils.CoachClientInterface
}

func NewCoachService(chatRepo repositories.ChatRepository, client utils.CoachClientInterface) CoachServiceInterface {
	return &CoachService{
		chatRepo: chatRepo,
		client:   client,
	}
}

// Chat runs one conversation turn: resolve or mint the session, persist
// the user message, assemble the bounded context window, generate, and
// persist the reply. Each persistence step commits on its own; there is
// no cross-step transaction.
func (s *CoachService) Chat(ctx context.Context, userID uuid.UUID, message string, sessionID string) (*response_models.ChatResponse, error) {
	session, err := s.resolveSession(ctx, userID, message, sessionID)
	if err != nil {
		return nil, err
	}

	userTurn := &db_models.ChatMessage{
		SessionID: session.ID,
		Role:      utils.RoleUser,
		Content:   message,
	}
	if err := s.chatRepo.InsertMessage(ctx, userTurn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	recent, err := s.chatRepo.RecentMessages(ctx, session.ID, contextWindowSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	history := make([]utils.ChatTurn, 0, len(recent))
	for _, m := range recent {
		history = append(history, utils.ChatTurn{Role: m.Role, Content: m.Content})
	}

	reply, err := s.client.Complete(ctx, coachSystemPrompt, history)
	if err != nil || reply == "" {
		if err != nil {
			log.Printf("coach completion failed: %v", err)
		}
		reply = coachFallbackReply
	}

	assistantTurn := &db_models.ChatMessage{
		SessionID: session.ID,
		Role:      utils.RoleAssistant,
		Content:   reply,
	}
	if err := s.chatRepo.InsertMessage(ctx, assistantTurn); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if err := s.chatRepo.TouchSession(ctx, session.ID); err != nil {
		log.Printf("failed to touch session %s: %v", session.ID, err)
	}

	return &response_models.ChatResponse{
		Reply:     reply,
		SessionID: session.ID.String(),
	}, nil
}

// resolveSession verifies the caller owns the given session; an
// absent, malformed or foreign id mints a fresh session titled after
// the first message. The id is parsed before it reaches the store so a
// garbage id behaves like an absent one.
func (s *CoachService) resolveSession(ctx context.Context, userID uuid.UUID, message, sessionID string) (*db_models.ChatSession, error) {
	if _, err := uuid.Parse(sessionID); err == nil {
		session, err := s.chatRepo.FindSession(ctx, userID, sessionID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if session != nil {
			return session, nil
		}
	}

	session := &db_models.ChatSession{
		UserID: userID,
		Title:  sessionTitle(message),
	}
	if err := s.chatRepo.InsertSession(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return session, nil
}

func sessionTitle(message string) string {
	runes := []rune(message)
	if len(runes) > sessionTitleLimit {
		return string(runes[:sessionTitleLimit])
	}
	if message == "" {
		return "Chat"
	}
	return message
}

func (s *CoachService) ListSessions(ctx context.Context, userID uuid.UUID) ([]response_models.ChatSessionResponse, error) {
	sessions, err := s.chatRepo.ListSessionsByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.ChatSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, response_models.ChatSessionResponse{
			ID:        session.ID.String(),
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		})
	}
	return out, nil
}

// SessionMessages returns the full ordered history of an owned session;
// a foreign, unknown or malformed session id reads as empty.
func (s *CoachService) SessionMessages(ctx context.Context, userID uuid.UUID, sessionID string) ([]response_models.ChatMessageResponse, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return []response_models.ChatMessageResponse{}, nil
	}
	session, err := s.chatRepo.FindSession(ctx, userID, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return []response_models.ChatMessageResponse{}, nil
	}

	messages, err := s.chatRepo.ListMessages(ctx, session.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, response_models.ChatMessageResponse{
			ID:        m.ID.String(),
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
