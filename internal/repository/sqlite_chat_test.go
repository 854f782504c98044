package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/stride/internal/domain"
	"github.com/stridehq/stride/internal/testutil"
)

func seedConversation(t *testing.T, repo *SQLiteChatRepo, userID string, n int) []string {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	contents := make([]string, 0, n)
	for i := 0; i < n; i++ {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		content := fmt.Sprintf("message %02d", i)
		require.NoError(t, repo.Append(ctx, &domain.ChatMessage{
			ID:        uuid.NewString(),
			UserID:    userID,
			Role:      role,
			Content:   content,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
		contents = append(contents, content)
	}
	return contents
}

func TestChatRepo_ListByUser_AscendingOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteChatRepo(db)
	contents := seedConversation(t, repo, "u1", 5)

	got, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, m := range got {
		assert.Equal(t, contents[i], m.Content)
	}
}

func TestChatRepo_ListRecent_WindowStillReadsOldestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteChatRepo(db)
	contents := seedConversation(t, repo, "u1", 30)

	got, err := repo.ListRecent(context.Background(), "u1", 20)
	require.NoError(t, err)
	require.Len(t, got, 20)
	// The newest 20, ascending: messages 10..29.
	assert.Equal(t, contents[10], got[0].Content)
	assert.Equal(t, contents[29], got[19].Content)
}

func TestChatRepo_ListRecent_FewerThanLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteChatRepo(db)
	seedConversation(t, repo, "u1", 3)

	got, err := repo.ListRecent(context.Background(), "u1", 20)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestChatRepo_Append_RejectsUnknownRole(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteChatRepo(db)

	err := repo.Append(context.Background(), &domain.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    "u1",
		Role:      "system",
		Content:   "should never be stored",
		Timestamp: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "system")

	got, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestChatRepo_Clear(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteChatRepo(db)
	seedConversation(t, repo, "u1", 4)
	seedConversation(t, repo, "u2", 2)

	require.NoError(t, repo.Clear(context.Background(), "u1"))

	mine, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := repo.ListByUser(context.Background(), "u2")
	require.NoError(t, err)
	assert.Len(t, theirs, 2)
}
