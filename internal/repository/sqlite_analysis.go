package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/stridehq/stride/internal/db"
	"github.com/stridehq/stride/internal/domain"
)

// SQLiteAnalysisRepo implements AnalysisRepo using a SQLite database.
// The analysis body is stored as a JSON payload; window metadata and the
// viewed flag live in columns so they can be queried.
type SQLiteAnalysisRepo struct {
	db db.DBTX
}

// NewSQLiteAnalysisRepo creates a new SQLiteAnalysisRepo.
func NewSQLiteAnalysisRepo(conn db.DBTX) *SQLiteAnalysisRepo {
	return &SQLiteAnalysisRepo{db: conn}
}

func (r *SQLiteAnalysisRepo) Create(ctx context.Context, a *domain.BehaviorAnalysis) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encoding analysis: %w", err)
	}

	query := `INSERT INTO behavior_analyses
		(id, user_id, payload, timeframe_start, timeframe_end, days_tracked, viewed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		string(payload),
		formatTime(a.TimeframeStart),
		formatTime(a.TimeframeEnd),
		a.DaysTracked,
		boolToInt(a.Viewed),
		formatTime(a.AnalyzedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting analysis: %w", err)
	}
	return nil
}

func (r *SQLiteAnalysisRepo) GetByID(ctx context.Context, id string) (*domain.BehaviorAnalysis, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+analysisColumns+` FROM behavior_analyses WHERE id = ?`, id)
	a, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("analysis %s: %w", id, ErrNotFound)
	}
	return a, err
}

func (r *SQLiteAnalysisRepo) LatestByUser(ctx context.Context, userID string) (*domain.BehaviorAnalysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM behavior_analyses
		WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, userID)
	a, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("latest analysis for user %s: %w", userID, ErrNotFound)
	}
	return a, err
}

func (r *SQLiteAnalysisRepo) MarkViewed(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE behavior_analyses SET viewed = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking analysis viewed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("analysis %s: %w", id, ErrNotFound)
	}
	return nil
}

const analysisColumns = `id, user_id, payload, timeframe_start, timeframe_end,
	days_tracked, viewed, created_at`

func scanAnalysis(row rowScanner) (*domain.BehaviorAnalysis, error) {
	var (
		id, userID, payload        string
		startText, endText, atText string
		daysTracked, viewed        int
	)
	err := row.Scan(&id, &userID, &payload, &startText, &endText,
		&daysTracked, &viewed, &atText)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning analysis: %w", err)
	}

	var a domain.BehaviorAnalysis
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		return nil, fmt.Errorf("decoding analysis: %w", err)
	}
	a.ID = id
	a.UserID = userID
	a.DaysTracked = daysTracked
	a.Viewed = intToBool(viewed)
	if a.TimeframeStart, err = parseTime(startText); err != nil {
		return nil, err
	}
	if a.TimeframeEnd, err = parseTime(endText); err != nil {
		return nil, err
	}
	if a.AnalyzedAt, err = parseTime(atText); err != nil {
		return nil, err
	}
	return &a, nil
}
