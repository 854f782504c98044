package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stridehq/stride/internal/db"
	"github.com/stridehq/stride/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
// One row per user; Upsert overwrites unconditionally (the row is a cache,
// recomputable from habit data).
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

func (r *SQLiteProgressRepo) Upsert(ctx context.Context, p *domain.UserProgress) error {
	query := `INSERT OR REPLACE INTO user_progress
		(user_id, total_habits, completed_today, streak, completion_rate, last_updated)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID,
		p.TotalHabits,
		p.CompletedToday,
		p.Streak,
		p.CompletionRate,
		formatTime(p.LastUpdated),
	)
	if err != nil {
		return fmt.Errorf("upserting progress: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) Get(ctx context.Context, userID string) (*domain.UserProgress, error) {
	query := `SELECT user_id, total_habits, completed_today, streak, completion_rate, last_updated
		FROM user_progress WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var (
		p           domain.UserProgress
		updatedText string
	)
	err := row.Scan(&p.UserID, &p.TotalHabits, &p.CompletedToday,
		&p.Streak, &p.CompletionRate, &updatedText)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("progress for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning progress: %w", err)
	}
	if p.LastUpdated, err = parseTime(updatedText); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProgress satisfies progress.Store.
func (r *SQLiteProgressRepo) UpsertProgress(ctx context.Context, p *domain.UserProgress) error {
	return r.Upsert(ctx, p)
}
