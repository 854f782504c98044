package domain

import "time"

// UserProgress is a materialized view of a user's habit engagement.
// It is recomputable from Habit data at any time and persisted only as a
// cache; it is never a source of truth.
type UserProgress struct {
	UserID         string
	TotalHabits    int
	CompletedToday int
	// Streak counts consecutive trailing days (today inclusive) on which the
	// user completed at least one habit, bounded by the lookback window.
	Streak int
	// CompletionRate is today's completed/total as a whole percentage.
	CompletionRate int
	LastUpdated    time.Time
}
