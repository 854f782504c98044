// Package progress derives the per-user engagement summary from habit data.
package progress

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/stridehq/stride/internal/domain"
)

// streakLookbackDays bounds the engagement-streak walk. The user-level streak
// is intentionally capped at a week; per-habit streaks are unbounded.
const streakLookbackDays = 7

// ErrCacheWrite indicates the computed progress could not be persisted.
// The computed value is still returned; callers may ignore this error for
// the cache-only progress record.
var ErrCacheWrite = errors.New("progress cache write failed")

// Store persists the progress cache row.
type Store interface {
	UpsertProgress(ctx context.Context, p *domain.UserProgress) error
}

// Aggregator computes and caches UserProgress.
type Aggregator struct {
	store Store
	log   *zap.Logger
}

// NewAggregator creates an Aggregator that caches through store.
func NewAggregator(store Store, log *zap.Logger) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{store: store, log: log}
}

// Compute derives UserProgress from the habit list. Pure: no I/O, no clock.
func Compute(userID string, habits []domain.Habit, today time.Time) domain.UserProgress {
	todayStr := domain.DayString(today)

	completedToday := 0
	for _, h := range habits {
		if h.IsCompletedOn(todayStr) {
			completedToday++
		}
	}

	rate := 0
	if len(habits) > 0 {
		rate = int(math.Round(float64(completedToday) / float64(len(habits)) * 100))
	}

	return domain.UserProgress{
		UserID:         userID,
		TotalHabits:    len(habits),
		CompletedToday: completedToday,
		Streak:         engagementStreak(habits, today),
		CompletionRate: rate,
		LastUpdated:    today,
	}
}

// engagementStreak walks backward from today and counts consecutive days on
// which the user completed at least one habit, stopping at the first day
// with zero completions.
func engagementStreak(habits []domain.Habit, today time.Time) int {
	streak := 0
	for i := 0; i < streakLookbackDays; i++ {
		day := domain.DayString(today.AddDate(0, 0, -i))
		completed := false
		for _, h := range habits {
			if h.IsCompletedOn(day) {
				completed = true
				break
			}
		}
		if !completed {
			break
		}
		streak++
	}
	return streak
}

// Refresh recomputes the user's progress and overwrites the cached row.
// If the write fails the computed value is still returned, with an error
// wrapping ErrCacheWrite so the failure stays observable.
func (a *Aggregator) Refresh(ctx context.Context, userID string, habits []domain.Habit, today time.Time) (domain.UserProgress, error) {
	p := Compute(userID, habits, today)

	if err := a.store.UpsertProgress(ctx, &p); err != nil {
		a.log.Warn("progress cache write failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return p, fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	return p, nil
}
