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

func newHabit(userID string) *domain.Habit {
	return &domain.Habit{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            "Morning walk",
		Description:     "20 minutes before work",
		Category:        domain.CategoryPhysical,
		DurationMinutes: 20,
		Frequency:       "daily",
		Priority:        domain.PriorityHigh,
		CreatedAt:       time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestHabitRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHabitRepo(db)
	ctx := context.Background()

	h := newHabit("u1")
	notif := "07:30"
	h.NotificationsEnabled = true
	h.NotificationTime = &notif
	require.NoError(t, repo.Create(ctx, h))

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, h.Name, got.Name)
	assert.Equal(t, domain.CategoryPhysical, got.Category)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.True(t, got.NotificationsEnabled)
	require.NotNil(t, got.NotificationTime)
	assert.Equal(t, "07:30", *got.NotificationTime)
	assert.Empty(t, got.CompletedDates)
	assert.True(t, got.CreatedAt.Equal(h.CreatedAt))
}

func TestHabitRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHabitRepo(db)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHabitRepo_ListByUser_ScopedToOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHabitRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newHabit("u1")))
	require.NoError(t, repo.Create(ctx, newHabit("u1")))
	require.NoError(t, repo.Create(ctx, newHabit("u2")))

	mine, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := repo.ListByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}

func TestHabitRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHabitRepo(db)
	ctx := context.Background()

	h := newHabit("u1")
	require.NoError(t, repo.Create(ctx, h))

	h.Name = "Evening walk"
	h.Priority = domain.PriorityLow
	require.NoError(t, repo.Update(ctx, h))

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Evening walk", got.Name)
	assert.Equal(t, domain.PriorityLow, got.Priority)
}

func TestHabitRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHabitRepo(db)
	ctx := context.Background()

	h := newHabit("u1")
	require.NoError(t, repo.Create(ctx, h))
	require.NoError(t, repo.Delete(ctx, h.ID))

	_, err := repo.GetByID(ctx, h.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, h.ID), ErrNotFound)
}

func TestHabitRepo_MarkCompleted_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHabitRepo(db)
	ctx := context.Background()

	h := newHabit("u1")
	require.NoError(t, repo.Create(ctx, h))

	require.NoError(t, repo.MarkCompleted(ctx, h.ID, "2024-03-10"))
	require.NoError(t, repo.MarkCompleted(ctx, h.ID, "2024-03-10"))
	require.NoError(t, repo.MarkCompleted(ctx, h.ID, "2024-03-11"))

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-10", "2024-03-11"}, got.CompletedDates)
}

func TestHabitRepo_UnmarkCompleted(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHabitRepo(db)
	ctx := context.Background()

	h := newHabit("u1")
	require.NoError(t, repo.Create(ctx, h))
	require.NoError(t, repo.MarkCompleted(ctx, h.ID, "2024-03-10"))

	require.NoError(t, repo.UnmarkCompleted(ctx, h.ID, "2024-03-10"))
	// Removing an absent date is a no-op.
	require.NoError(t, repo.UnmarkCompleted(ctx, h.ID, "2024-03-10"))

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Empty(t, got.CompletedDates)
}
