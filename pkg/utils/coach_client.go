package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one role/content pair of a conversation context window.
type ChatTurn struct {
	Role    string
	Content string
}

// CoachClientInterface generates an assistant reply for an ordered
// conversation history prefixed with a system instruction.
type CoachClientInterface interface {
	Complete(ctx context.Context, system string, history []ChatTurn) (string, error)
}

// GroqCoachClient talks to Groq through its OpenAI-compatible endpoint.
type GroqCoachClient struct {
	client *openai.Client
	model  string
}

const groqBaseURL = "https://api.groq.com/openai/v1"

func NewGroqCoachClient(apiKey, model string) CoachClientInterface {
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &GroqCoachClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (g *GroqCoachClient) Complete(ctx context.Context, system string, history []ChatTurn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Content,
		})
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     g.model,
		Messages:  messages,
		MaxTokens: 1024,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrCoachUnavailable
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GeminiCoachClient uses Google's Gemini models as an alternative provider.
type GeminiCoachClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCoachClient(apiKey, model string) (CoachClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiCoachClient{client: client, model: model}, nil
}

func (g *GeminiCoachClient) Complete(ctx context.Context, system string, history []ChatTurn) (string, error) {
	if len(history) == 0 {
		return "", ErrCoachUnavailable
	}

	m := g.client.GenerativeModel(g.model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	chat := m.StartChat()
	for _, turn := range history[:len(history)-1] {
		role := "user"
		if turn.Role == RoleAssistant {
			role = "model"
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(history[len(history)-1].Content))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrCoachUnavailable
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// DisabledCoachClient stands in when no provider credentials are
// configured; callers substitute the fixed fallback reply.
type DisabledCoachClient struct{}

func (DisabledCoachClient) Complete(ctx context.Context, system string, history []ChatTurn) (string, error) {
	return "", ErrCoachUnavailable
}
