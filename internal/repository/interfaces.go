package repository

import (
	"context"

	"github.com/stridehq/stride/internal/domain"
)

// The record store the core depends on: CRUD scoped by id and user id, plus
// order-by-timestamp-limit-N queries. Any persistent store with these
// operations would do; the SQLite implementations live alongside.

type HabitRepo interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Habit, error)
	Update(ctx context.Context, h *domain.Habit) error
	Delete(ctx context.Context, id string) error

	// MarkCompleted records a completion for one calendar day. Inserting the
	// same day twice is a no-op: completed dates form a set.
	MarkCompleted(ctx context.Context, id, date string) error
	UnmarkCompleted(ctx context.Context, id, date string) error
}

type RoutineRepo interface {
	Create(ctx context.Context, r *domain.DailyRoutine) error
	ListByUser(ctx context.Context, userID string) ([]*domain.DailyRoutine, error)
	Delete(ctx context.Context, id string) error
}

type ProgressRepo interface {
	// Upsert overwrites the cached progress row for the user.
	Upsert(ctx context.Context, p *domain.UserProgress) error
	Get(ctx context.Context, userID string) (*domain.UserProgress, error)
}

type PsychologyProfileRepo interface {
	Upsert(ctx context.Context, p *domain.PsychologyProfile) error
	Get(ctx context.Context, userID string) (*domain.PsychologyProfile, error)
}

type AnalysisRepo interface {
	Create(ctx context.Context, a *domain.BehaviorAnalysis) error
	GetByID(ctx context.Context, id string) (*domain.BehaviorAnalysis, error)
	// LatestByUser returns the most recently created snapshot for the user.
	LatestByUser(ctx context.Context, userID string) (*domain.BehaviorAnalysis, error)
	// MarkViewed flips the one-way viewed flag. Idempotent.
	MarkViewed(ctx context.Context, id string) error
}

type ChatRepo interface {
	Append(ctx context.Context, m *domain.ChatMessage) error
	// ListByUser returns the full conversation ordered by timestamp ascending.
	ListByUser(ctx context.Context, userID string) ([]*domain.ChatMessage, error)
	// ListRecent returns up to limit of the newest messages, reordered
	// ascending so they read as a conversation.
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error)
	Clear(ctx context.Context, userID string) error
}
