package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/stride/internal/domain"
	"github.com/stridehq/stride/internal/testutil"
)

func newAnalysis(userID string, analyzedAt time.Time) *domain.BehaviorAnalysis {
	return &domain.BehaviorAnalysis{
		ID:     uuid.NewString(),
		UserID: userID,
		Insights: []domain.Insight{
			{Kind: domain.InsightSuccess, Title: "Consistent mornings", Description: "Morning habits hold", Confidence: domain.RiskHigh},
		},
		Recommendations: []domain.HabitRecommendation{
			{HabitName: "Morning walk", Action: domain.ActionContinue, Reason: "working well"},
		},
		MotivationalThemes: []string{"momentum"},
		NextSteps:          []string{"keep the 7am slot"},
		PromptVersion:      "v1",
		AnalyzedAt:         analyzedAt,
		TimeframeStart:     analyzedAt.AddDate(0, 0, -14),
		TimeframeEnd:       analyzedAt,
		DaysTracked:        14,
	}
}

func TestAnalysisRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAnalysisRepo(db)
	ctx := context.Background()

	a := newAnalysis("u1", time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.UserID, got.UserID)
	require.Len(t, got.Insights, 1)
	assert.Equal(t, domain.InsightSuccess, got.Insights[0].Kind)
	assert.Equal(t, 14, got.DaysTracked)
	assert.Equal(t, "v1", got.PromptVersion)
	assert.False(t, got.Viewed)
	assert.True(t, got.AnalyzedAt.Equal(a.AnalyzedAt))
}

func TestAnalysisRepo_LatestByUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAnalysisRepo(db)
	ctx := context.Background()

	older := newAnalysis("u1", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	newer := newAnalysis("u1", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	other := newAnalysis("u2", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, other))

	got, err := repo.LatestByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)
}

func TestAnalysisRepo_LatestByUser_None(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAnalysisRepo(db)

	_, err := repo.LatestByUser(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalysisRepo_MarkViewed_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAnalysisRepo(db)
	ctx := context.Background()

	a := newAnalysis("u1", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, a))

	require.NoError(t, repo.MarkViewed(ctx, a.ID))
	require.NoError(t, repo.MarkViewed(ctx, a.ID))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, got.Viewed)

	assert.ErrorIs(t, repo.MarkViewed(ctx, "missing"), ErrNotFound)
}
