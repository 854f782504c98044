package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/stridehq/stride/internal/db"
	"github.com/stridehq/stride/internal/domain"
)

// SQLitePsychologyProfileRepo implements PsychologyProfileRepo using a
// SQLite database. The profile is stored as a JSON payload: it is written
// and read whole, never queried by field.
type SQLitePsychologyProfileRepo struct {
	db db.DBTX
}

// NewSQLitePsychologyProfileRepo creates a new SQLitePsychologyProfileRepo.
func NewSQLitePsychologyProfileRepo(conn db.DBTX) *SQLitePsychologyProfileRepo {
	return &SQLitePsychologyProfileRepo{db: conn}
}

func (r *SQLitePsychologyProfileRepo) Upsert(ctx context.Context, p *domain.PsychologyProfile) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding psychology profile: %w", err)
	}

	query := `INSERT OR REPLACE INTO psychology_profiles (user_id, payload, created_at)
		VALUES (?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, p.UserID, string(payload), formatTime(p.CreatedAt))
	if err != nil {
		return fmt.Errorf("upserting psychology profile: %w", err)
	}
	return nil
}

func (r *SQLitePsychologyProfileRepo) Get(ctx context.Context, userID string) (*domain.PsychologyProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, payload, created_at FROM psychology_profiles WHERE user_id = ?`, userID)

	var (
		id          string
		payload     string
		createdText string
	)
	err := row.Scan(&id, &payload, &createdText)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("psychology profile for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning psychology profile: %w", err)
	}

	var p domain.PsychologyProfile
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("decoding psychology profile: %w", err)
	}
	p.UserID = id
	if p.CreatedAt, err = parseTime(createdText); err != nil {
		return nil, err
	}
	return &p, nil
}
