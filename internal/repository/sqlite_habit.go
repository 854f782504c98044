package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stridehq/stride/internal/db"
	"github.com/stridehq/stride/internal/domain"
)

// SQLiteHabitRepo implements HabitRepo using a SQLite database.
// Completed dates are stored as a JSON array column; set semantics are
// enforced on write.
type SQLiteHabitRepo struct {
	db db.DBTX
}

// NewSQLiteHabitRepo creates a new SQLiteHabitRepo.
func NewSQLiteHabitRepo(conn db.DBTX) *SQLiteHabitRepo {
	return &SQLiteHabitRepo{db: conn}
}

const habitColumns = `id, user_id, name, description, category, duration_minutes,
	frequency, priority, notifications_enabled, notification_time,
	completed_dates, ai_generated, created_at`

func (r *SQLiteHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	dates, err := marshalStrings(h.CompletedDates)
	if err != nil {
		return fmt.Errorf("encoding completed dates: %w", err)
	}

	query := `INSERT INTO habits (` + habitColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		h.ID,
		h.UserID,
		h.Name,
		h.Description,
		string(h.Category),
		h.DurationMinutes,
		h.Frequency,
		string(h.Priority),
		boolToInt(h.NotificationsEnabled),
		nullableString(h.NotificationTime),
		dates,
		boolToInt(h.AIGenerated),
		formatTime(h.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+habitColumns+` FROM habits WHERE id = ?`, id)
	h, err := scanHabit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return h, nil
}

func (r *SQLiteHabitRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Habit, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+habitColumns+` FROM habits WHERE user_id = ? ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	defer rows.Close()

	var habits []*domain.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (r *SQLiteHabitRepo) Update(ctx context.Context, h *domain.Habit) error {
	dates, err := marshalStrings(h.CompletedDates)
	if err != nil {
		return fmt.Errorf("encoding completed dates: %w", err)
	}

	// id and user_id are immutable after creation.
	query := `UPDATE habits SET name = ?, description = ?, category = ?,
		duration_minutes = ?, frequency = ?, priority = ?,
		notifications_enabled = ?, notification_time = ?,
		completed_dates = ?, ai_generated = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		h.Name,
		h.Description,
		string(h.Category),
		h.DurationMinutes,
		h.Frequency,
		string(h.Priority),
		boolToInt(h.NotificationsEnabled),
		nullableString(h.NotificationTime),
		dates,
		boolToInt(h.AIGenerated),
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("updating habit: %w", err)
	}
	return requireRow(res, h.ID)
}

func (r *SQLiteHabitRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	return requireRow(res, id)
}

func (r *SQLiteHabitRepo) MarkCompleted(ctx context.Context, id, date string) error {
	return r.mutateDates(ctx, id, func(h *domain.Habit) {
		h.MarkCompleted(date)
	})
}

func (r *SQLiteHabitRepo) UnmarkCompleted(ctx context.Context, id, date string) error {
	return r.mutateDates(ctx, id, func(h *domain.Habit) {
		h.UnmarkCompleted(date)
	})
}

// mutateDates applies a set mutation to a habit's completed dates and writes
// the result back. Read-modify-write with last-writer-wins: entities are
// strictly user-scoped, so no cross-writer coordination is needed here.
func (r *SQLiteHabitRepo) mutateDates(ctx context.Context, id string, mutate func(*domain.Habit)) error {
	h, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	mutate(h)

	dates, err := marshalStrings(h.CompletedDates)
	if err != nil {
		return fmt.Errorf("encoding completed dates: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE habits SET completed_dates = ? WHERE id = ?`, dates, id)
	if err != nil {
		return fmt.Errorf("updating completed dates: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHabit(row rowScanner) (*domain.Habit, error) {
	var (
		h             domain.Habit
		category      string
		priority      string
		notifEnabled  int
		notifTime     sql.NullString
		datesJSON     string
		aiGenerated   int
		createdAtText string
	)
	err := row.Scan(
		&h.ID,
		&h.UserID,
		&h.Name,
		&h.Description,
		&category,
		&h.DurationMinutes,
		&h.Frequency,
		&priority,
		&notifEnabled,
		&notifTime,
		&datesJSON,
		&aiGenerated,
		&createdAtText,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning habit: %w", err)
	}

	h.Category = domain.Category(category)
	h.Priority = domain.Priority(priority)
	h.NotificationsEnabled = intToBool(notifEnabled)
	h.NotificationTime = scanNullableString(notifTime)
	h.AIGenerated = intToBool(aiGenerated)

	if h.CompletedDates, err = unmarshalStrings(datesJSON); err != nil {
		return nil, fmt.Errorf("decoding completed dates: %w", err)
	}
	if h.CreatedAt, err = parseTime(createdAtText); err != nil {
		return nil, err
	}
	return &h, nil
}

// requireRow converts a zero-row result into ErrNotFound.
func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}
	return nil
}
