package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/stridehq/stride/internal/domain"
	"github.com/stridehq/stride/internal/llm"
)

// ChatService produces free-text coaching replies. Unlike the structured
// services it performs no JSON parsing; the model's text comes back verbatim.
type ChatService interface {
	Reply(ctx context.Context, userMessage string, history []domain.ChatMessage, chatCtx *ChatContext, profile *domain.PsychologyProfile) (string, error)
}

type chatService struct {
	client llm.Client
}

// NewChatService creates a ChatService backed by an AI client.
func NewChatService(client llm.Client) ChatService {
	return &chatService{client: client}
}

func (s *chatService) Reply(ctx context.Context, userMessage string, history []domain.ChatMessage, chatCtx *ChatContext, profile *domain.PsychologyProfile) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", fmt.Errorf("chat message: %w", ErrEmptyInput)
	}

	system, err := ComposeSystemPrompt(chatCtx, profile)
	if err != nil {
		return "", fmt.Errorf("composing coaching prompt: %w", err)
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: system})
	for _, m := range history {
		messages = append(messages, llm.Message{Role: string(m.Role), Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: userMessage})

	resp, err := s.client.Complete(ctx, llm.TaskChat, messages)
	if err != nil {
		return "", fmt.Errorf("coaching chat: %w", err)
	}
	return resp.Text, nil
}
