package repository

import (
	"context"
	"fmt"

	"github.com/stridehq/stride/internal/db"
	"github.com/stridehq/stride/internal/domain"
)

// SQLiteRoutineRepo implements RoutineRepo using a SQLite database.
type SQLiteRoutineRepo struct {
	db db.DBTX
}

// NewSQLiteRoutineRepo creates a new SQLiteRoutineRepo.
func NewSQLiteRoutineRepo(conn db.DBTX) *SQLiteRoutineRepo {
	return &SQLiteRoutineRepo{db: conn}
}

func (r *SQLiteRoutineRepo) Create(ctx context.Context, routine *domain.DailyRoutine) error {
	activities, err := marshalStrings(routine.Activities)
	if err != nil {
		return fmt.Errorf("encoding activities: %w", err)
	}

	query := `INSERT INTO daily_routines (id, user_id, time_of_day, activities, duration_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		routine.ID,
		routine.UserID,
		string(routine.TimeOfDay),
		activities,
		routine.DurationMinutes,
		formatTime(routine.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting routine: %w", err)
	}
	return nil
}

func (r *SQLiteRoutineRepo) ListByUser(ctx context.Context, userID string) ([]*domain.DailyRoutine, error) {
	query := `SELECT id, user_id, time_of_day, activities, duration_minutes, created_at
		FROM daily_routines WHERE user_id = ?
		ORDER BY CASE time_of_day
			WHEN 'morning' THEN 0 WHEN 'afternoon' THEN 1 ELSE 2 END, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing routines: %w", err)
	}
	defer rows.Close()

	var routines []*domain.DailyRoutine
	for rows.Next() {
		var (
			routine        domain.DailyRoutine
			timeOfDay      string
			activitiesJSON string
			createdAtText  string
		)
		if err := rows.Scan(&routine.ID, &routine.UserID, &timeOfDay,
			&activitiesJSON, &routine.DurationMinutes, &createdAtText); err != nil {
			return nil, fmt.Errorf("scanning routine: %w", err)
		}
		routine.TimeOfDay = domain.TimeOfDay(timeOfDay)
		if routine.Activities, err = unmarshalStrings(activitiesJSON); err != nil {
			return nil, fmt.Errorf("decoding activities: %w", err)
		}
		if routine.CreatedAt, err = parseTime(createdAtText); err != nil {
			return nil, err
		}
		routines = append(routines, &routine)
	}
	return routines, rows.Err()
}

func (r *SQLiteRoutineRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM daily_routines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting routine: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("routine %s: %w", id, ErrNotFound)
	}
	return nil
}
