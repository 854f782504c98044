package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stridehq/stride/internal/coach"
	"github.com/stridehq/stride/internal/domain"
	"github.com/stridehq/stride/internal/repository"
)

// historyWindow caps how much prior conversation is replayed to the model.
const historyWindow = 20

// maxContextInsights caps how many insight titles from the latest behavior
// analysis are spliced into the coaching prompt.
const maxContextInsights = 3

// ChatService runs the coaching conversation: it persists both sides of the
// exchange and assembles the per-turn context the prompt composer needs.
type ChatService struct {
	chats    repository.ChatRepo
	progress repository.ProgressRepo
	profiles repository.PsychologyProfileRepo
	analyses repository.AnalysisRepo
	coach    coach.ChatService
	log      *zap.Logger
	now      func() time.Time
}

func NewChatService(
	chats repository.ChatRepo,
	progressRepo repository.ProgressRepo,
	profiles repository.PsychologyProfileRepo,
	analyses repository.AnalysisRepo,
	coachChat coach.ChatService,
	log *zap.Logger,
) *ChatService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatService{
		chats:    chats,
		progress: progressRepo,
		profiles: profiles,
		analyses: analyses,
		coach:    coachChat,
		log:      log,
		now:      time.Now,
	}
}

// WithClock overrides the service's time source. Used in tests.
func (s *ChatService) WithClock(now func() time.Time) *ChatService {
	s.now = now
	return s
}

// Send appends the user's message to the conversation, asks the coach for a
// reply with current habit context, and persists the assistant's answer.
// The assistant message is returned. If the AI call fails the user's message
// stays persisted so the conversation is not silently lost.
func (s *ChatService) Send(ctx context.Context, userID, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("chat message: %w", ErrEmptyInput)
	}

	history, err := s.chats.ListRecent(ctx, userID, historyWindow)
	if err != nil {
		return nil, fmt.Errorf("loading chat history: %w", err)
	}

	chatCtx, err := s.buildContext(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		profile = nil
	} else if err != nil {
		return nil, fmt.Errorf("loading psychology profile: %w", err)
	}

	userMsg := &domain.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      domain.RoleUser,
		Content:   text,
		Timestamp: s.now(),
	}
	if err := s.chats.Append(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("persisting user message: %w", err)
	}

	prior := make([]domain.ChatMessage, len(history))
	for i, m := range history {
		prior[i] = *m
	}
	reply, err := s.coach.Reply(ctx, text, prior, chatCtx, profile)
	if err != nil {
		return nil, err
	}

	assistantMsg := &domain.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      domain.RoleAssistant,
		Content:   reply,
		Timestamp: s.now(),
	}
	if err := s.chats.Append(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("persisting assistant message: %w", err)
	}

	s.log.Info("coaching exchange completed",
		zap.String("user_id", userID),
		zap.Int("history_len", len(prior)),
	)
	return assistantMsg, nil
}

// buildContext assembles the habit context for one conversation turn from
// the progress cache and the latest behavior analysis. Both are optional:
// a brand-new user chats with no context at all.
func (s *ChatService) buildContext(ctx context.Context, userID string) (*coach.ChatContext, error) {
	chatCtx := &coach.ChatContext{}

	p, err := s.progress.Get(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("loading progress cache: %w", err)
	default:
		chatCtx.ActiveHabits = p.TotalHabits
		chatCtx.CompletedToday = p.CompletedToday
		chatCtx.CurrentStreak = p.Streak
	}

	latest, err := s.analyses.LatestByUser(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("loading latest analysis: %w", err)
	default:
		for _, ins := range latest.Insights {
			if len(chatCtx.RecentInsights) == maxContextInsights {
				break
			}
			chatCtx.RecentInsights = append(chatCtx.RecentInsights, ins.Title)
		}
	}

	return chatCtx, nil
}

// History returns the full conversation, oldest first.
func (s *ChatService) History(ctx context.Context, userID string) ([]*domain.ChatMessage, error) {
	return s.chats.ListByUser(ctx, userID)
}

// Clear deletes the user's entire conversation.
func (s *ChatService) Clear(ctx context.Context, userID string) error {
	return s.chats.Clear(ctx, userID)
}
