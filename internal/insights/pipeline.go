// Package insights runs the behavior-analysis pipeline: it decides when a
// fresh analysis is due, condenses raw habit and chat activity into a
// digest, and turns the AI's answer into a persisted snapshot.
package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stridehq/stride/internal/coach"
	"github.com/stridehq/stride/internal/domain"
	"github.com/stridehq/stride/internal/repository"
	"github.com/stridehq/stride/internal/streak"
)

const (
	// freshnessWindow is how long a snapshot stays current. A new analysis
	// is generated only once the latest one is at least this old.
	freshnessWindow = 7 * 24 * time.Hour

	// digestWindowDays bounds the activity window summarized per habit.
	digestWindowDays = 14

	// recentMessageLimit caps how much chat history feeds theme extraction.
	recentMessageLimit = 20
)

// Pipeline orchestrates behavior analysis for a user.
type Pipeline struct {
	habits   repository.HabitRepo
	chats    repository.ChatRepo
	profiles repository.PsychologyProfileRepo
	analyses repository.AnalysisRepo
	behavior coach.BehaviorService
	log      *zap.Logger
	now      func() time.Time
}

func NewPipeline(
	habits repository.HabitRepo,
	chats repository.ChatRepo,
	profiles repository.PsychologyProfileRepo,
	analyses repository.AnalysisRepo,
	behavior coach.BehaviorService,
	log *zap.Logger,
) *Pipeline {
	return &Pipeline{
		habits:   habits,
		chats:    chats,
		profiles: profiles,
		analyses: analyses,
		behavior: behavior,
		log:      log,
		now:      time.Now,
	}
}

// WithClock overrides the pipeline's time source. Used in tests.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// ShouldGenerate reports whether the user is due a fresh analysis: true when
// no snapshot exists, or when the latest one is at least a full freshness
// window old. 6.9 days is still fresh.
func (p *Pipeline) ShouldGenerate(ctx context.Context, userID string) (bool, error) {
	latest, err := p.analyses.LatestByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading latest analysis: %w", err)
	}
	return p.now().Sub(latest.AnalyzedAt) >= freshnessWindow, nil
}

// Generate builds a 14-day activity digest, asks the AI for an analysis, and
// persists the result as a new snapshot. The caller decides when to call this;
// Generate itself does not consult freshness.
func (p *Pipeline) Generate(ctx context.Context, userID string) (*domain.BehaviorAnalysis, error) {
	now := p.now()
	start := now.AddDate(0, 0, -digestWindowDays)

	habits, err := p.habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}

	digest := coach.ActivityDigest{
		Habits:         make([]coach.HabitActivity, 0, len(habits)),
		TimeframeStart: start,
		TimeframeEnd:   now,
		DaysTracked:    digestWindowDays,
	}
	for _, h := range habits {
		digest.Habits = append(digest.Habits, summarizeHabit(h, start, now))
	}

	messages, err := p.chats.ListRecent(ctx, userID, recentMessageLimit)
	if err != nil {
		return nil, fmt.Errorf("listing recent chat: %w", err)
	}
	digest.RecentChatThemes = ExtractThemes(messages)

	profile, err := p.profiles.Get(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// Analysis works without a profile, just with less context.
	case err != nil:
		return nil, fmt.Errorf("loading psychology profile: %w", err)
	default:
		digest.Profile = profile
	}

	analysis, err := p.behavior.Analyze(ctx, digest)
	if err != nil {
		return nil, err
	}

	analysis.ID = uuid.NewString()
	analysis.UserID = userID
	analysis.AnalyzedAt = now
	analysis.TimeframeStart = start
	analysis.TimeframeEnd = now
	analysis.DaysTracked = digestWindowDays

	if err := p.analyses.Create(ctx, analysis); err != nil {
		return nil, fmt.Errorf("persisting analysis: %w", err)
	}

	p.log.Info("behavior analysis generated",
		zap.String("user_id", userID),
		zap.String("analysis_id", analysis.ID),
		zap.Int("habits", len(digest.Habits)),
		zap.Strings("themes", digest.RecentChatThemes),
	)
	return analysis, nil
}

// Latest returns the newest snapshot for the user, or nil when none exists.
// Reading never triggers generation.
func (p *Pipeline) Latest(ctx context.Context, userID string) (*domain.BehaviorAnalysis, error) {
	latest, err := p.analyses.LatestByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading latest analysis: %w", err)
	}
	return latest, nil
}

// MarkViewed flips the one-way viewed flag on a snapshot.
func (p *Pipeline) MarkViewed(ctx context.Context, analysisID string) error {
	return p.analyses.MarkViewed(ctx, analysisID)
}

// summarizeHabit reduces a habit's full completion history to the digest
// slice the analysis prompt consumes. The completion rate covers only the
// digest window; totals and streaks cover all recorded history.
func summarizeHabit(h *domain.Habit, start, end time.Time) coach.HabitActivity {
	days := streak.Normalize(h.CompletedDates)

	inWindow := 0
	var last *time.Time
	for _, d := range days {
		if d.After(start) && !d.After(end) {
			inWindow++
		}
		if last == nil || d.After(*last) {
			day := d
			last = &day
		}
	}

	return coach.HabitActivity{
		ID:               h.ID,
		Name:             h.Name,
		Category:         h.Category,
		CompletionRate:   float64(inWindow) / float64(digestWindowDays),
		TotalCompletions: len(days),
		CurrentStreak:    streak.Current(h.CompletedDates, end),
		LongestStreak:    streak.Longest(h.CompletedDates),
		LastCompleted:    last,
	}
}
