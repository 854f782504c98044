package repository

import (
	"context"
	"fmt"

	"github.com/stridehq/stride/internal/db"
	"github.com/stridehq/stride/internal/domain"
)

// SQLiteChatRepo implements ChatRepo using a SQLite database.
// Messages are immutable once appended.
type SQLiteChatRepo struct {
	db db.DBTX
}

// NewSQLiteChatRepo creates a new SQLiteChatRepo.
func NewSQLiteChatRepo(conn db.DBTX) *SQLiteChatRepo {
	return &SQLiteChatRepo{db: conn}
}

func (r *SQLiteChatRepo) Append(ctx context.Context, m *domain.ChatMessage) error {
	if !domain.ValidChatRoles[m.Role] {
		return fmt.Errorf("chat role %q is not a known role", m.Role)
	}
	query := `INSERT INTO chat_messages (id, user_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.UserID, string(m.Role), m.Content, formatTime(m.Timestamp))
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

func (r *SQLiteChatRepo) ListByUser(ctx context.Context, userID string) ([]*domain.ChatMessage, error) {
	query := `SELECT id, user_id, role, content, created_at
		FROM chat_messages WHERE user_id = ? ORDER BY created_at, id`
	return r.query(ctx, query, userID)
}

func (r *SQLiteChatRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error) {
	// Newest N, then flipped so the window still reads oldest-first.
	query := `SELECT id, user_id, role, content, created_at
		FROM chat_messages WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`
	messages, err := r.query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *SQLiteChatRepo) Clear(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM chat_messages WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clearing chat messages: %w", err)
	}
	return nil
}

func (r *SQLiteChatRepo) query(ctx context.Context, query string, args ...interface{}) ([]*domain.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing chat messages: %w", err)
	}
	defer rows.Close()

	var messages []*domain.ChatMessage
	for rows.Next() {
		var (
			m      domain.ChatMessage
			role   string
			atText string
		)
		if err := rows.Scan(&m.ID, &m.UserID, &role, &m.Content, &atText); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		m.Role = domain.ChatRole(role)
		if m.Timestamp, err = parseTime(atText); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
