// Package service orchestrates repositories, the progress aggregator, and
// the AI coach into the operations a UI layer calls.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stridehq/stride/internal/coach"
	"github.com/stridehq/stride/internal/domain"
	"github.com/stridehq/stride/internal/progress"
	"github.com/stridehq/stride/internal/repository"
)

// Defaults applied when a habit arrives as free text and the AI refinement
// carries no scheduling fields.
const (
	defaultDurationMinutes = 15
	defaultFrequency       = "daily"
)

// HabitService owns the habit lifecycle: creation (manual, refined from an
// idea, or from an onboarding plan), completion tracking, and the progress
// recompute that follows every completion change.
type HabitService struct {
	habits     repository.HabitRepo
	routines   repository.RoutineRepo
	refiner    coach.RefinementService
	aggregator *progress.Aggregator
	log        *zap.Logger
	now        func() time.Time
}

func NewHabitService(
	habits repository.HabitRepo,
	routines repository.RoutineRepo,
	refiner coach.RefinementService,
	aggregator *progress.Aggregator,
	log *zap.Logger,
) *HabitService {
	if log == nil {
		log = zap.NewNop()
	}
	return &HabitService{
		habits:     habits,
		routines:   routines,
		refiner:    refiner,
		aggregator: aggregator,
		log:        log,
		now:        time.Now,
	}
}

// WithClock overrides the service's time source. Used in tests.
func (s *HabitService) WithClock(now func() time.Time) *HabitService {
	s.now = now
	return s
}

func validateHabit(h *domain.Habit) error {
	if h.UserID == "" {
		return fmt.Errorf("habit has no user: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("habit has no name: %w", ErrInvalidInput)
	}
	if !domain.ValidCategories[h.Category] {
		return fmt.Errorf("unknown category %q: %w", h.Category, ErrInvalidInput)
	}
	if !domain.ValidPriorities[h.Priority] {
		return fmt.Errorf("unknown priority %q: %w", h.Priority, ErrInvalidInput)
	}
	if h.DurationMinutes <= 0 {
		return fmt.Errorf("duration %d minutes: %w", h.DurationMinutes, ErrInvalidInput)
	}
	return nil
}

// CreateHabit validates and persists a user-authored habit, filling in the
// id and creation time.
func (s *HabitService) CreateHabit(ctx context.Context, h *domain.Habit) error {
	if err := validateHabit(h); err != nil {
		return err
	}
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = s.now()
	}
	if err := s.habits.Create(ctx, h); err != nil {
		return fmt.Errorf("creating habit: %w", err)
	}
	s.log.Info("habit created",
		zap.String("user_id", h.UserID),
		zap.String("habit_id", h.ID),
		zap.Bool("ai_generated", h.AIGenerated),
	)
	return nil
}

// CreateFromIdea refines a free-text habit idea through the AI coach and
// persists the result with default scheduling.
func (s *HabitService) CreateFromIdea(ctx context.Context, userID, idea string) (*domain.Habit, error) {
	refined, err := s.refiner.Refine(ctx, idea)
	if err != nil {
		return nil, err
	}

	h := &domain.Habit{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            refined.Name,
		Description:     refined.Description,
		Category:        refined.Category,
		DurationMinutes: defaultDurationMinutes,
		Frequency:       defaultFrequency,
		Priority:        domain.PriorityMedium,
		AIGenerated:     true,
		CreatedAt:       s.now(),
	}
	if err := s.CreateHabit(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// ApplyGoalPlan materializes an onboarding plan: every planned habit and
// daily routine becomes a persisted record owned by the user.
func (s *HabitService) ApplyGoalPlan(ctx context.Context, userID string, plan *coach.GoalPlan) ([]*domain.Habit, []*domain.DailyRoutine, error) {
	now := s.now()

	habits := make([]*domain.Habit, 0, len(plan.Habits))
	for _, p := range plan.Habits {
		h := &domain.Habit{
			ID:              uuid.NewString(),
			UserID:          userID,
			Name:            p.Name,
			Description:     p.Description,
			Category:        p.Category,
			DurationMinutes: p.DurationMinutes,
			Frequency:       p.Frequency,
			Priority:        p.Priority,
			AIGenerated:     true,
			CreatedAt:       now,
		}
		if err := s.habits.Create(ctx, h); err != nil {
			return nil, nil, fmt.Errorf("creating planned habit %q: %w", p.Name, err)
		}
		habits = append(habits, h)
	}

	routines := make([]*domain.DailyRoutine, 0, len(plan.DailyRoutines))
	for _, p := range plan.DailyRoutines {
		r := &domain.DailyRoutine{
			ID:              uuid.NewString(),
			UserID:          userID,
			TimeOfDay:       p.TimeOfDay,
			Activities:      p.Activities,
			DurationMinutes: p.DurationMinutes,
			CreatedAt:       now,
		}
		if err := s.routines.Create(ctx, r); err != nil {
			return nil, nil, fmt.Errorf("creating planned routine: %w", err)
		}
		routines = append(routines, r)
	}

	s.log.Info("goal plan applied",
		zap.String("user_id", userID),
		zap.Int("habits", len(habits)),
		zap.Int("routines", len(routines)),
	)
	return habits, routines, nil
}

// MarkCompleted records a completion for one calendar day and recomputes the
// user's progress cache. The refreshed progress is returned; a cache write
// failure surfaces as progress.ErrCacheWrite alongside the computed value.
func (s *HabitService) MarkCompleted(ctx context.Context, habitID, date string) (domain.UserProgress, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.UserProgress{}, fmt.Errorf("date %q: %w", date, ErrInvalidInput)
	}

	h, err := s.habits.GetByID(ctx, habitID)
	if err != nil {
		return domain.UserProgress{}, err
	}
	if err := s.habits.MarkCompleted(ctx, habitID, date); err != nil {
		return domain.UserProgress{}, fmt.Errorf("marking completion: %w", err)
	}
	return s.refreshProgress(ctx, h.UserID)
}

// UnmarkCompleted removes a completion and recomputes progress. Removing an
// absent date still refreshes the cache.
func (s *HabitService) UnmarkCompleted(ctx context.Context, habitID, date string) (domain.UserProgress, error) {
	h, err := s.habits.GetByID(ctx, habitID)
	if err != nil {
		return domain.UserProgress{}, err
	}
	if err := s.habits.UnmarkCompleted(ctx, habitID, date); err != nil {
		return domain.UserProgress{}, fmt.Errorf("unmarking completion: %w", err)
	}
	return s.refreshProgress(ctx, h.UserID)
}

func (s *HabitService) refreshProgress(ctx context.Context, userID string) (domain.UserProgress, error) {
	list, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		return domain.UserProgress{}, fmt.Errorf("listing habits for progress: %w", err)
	}
	habits := make([]domain.Habit, len(list))
	for i, h := range list {
		habits[i] = *h
	}
	return s.aggregator.Refresh(ctx, userID, habits, s.now())
}

func (s *HabitService) Update(ctx context.Context, h *domain.Habit) error {
	if err := validateHabit(h); err != nil {
		return err
	}
	return s.habits.Update(ctx, h)
}

func (s *HabitService) Delete(ctx context.Context, habitID string) error {
	return s.habits.Delete(ctx, habitID)
}

func (s *HabitService) ListByUser(ctx context.Context, userID string) ([]*domain.Habit, error) {
	return s.habits.ListByUser(ctx, userID)
}
