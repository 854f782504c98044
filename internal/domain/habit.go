package domain

import "time"

// DateLayout is the calendar-day format used for completion dates.
// Completion dates carry no timezone; equality is whole-calendar-day equality.
const DateLayout = "2006-01-02"

// Habit is a recurring user-defined activity tracked by completion date.
// UserID and ID never change after creation.
type Habit struct {
	ID                   string
	UserID               string
	Name                 string
	Description          string
	Category             Category
	DurationMinutes      int
	Frequency            string // free-form, e.g. "daily", "3x/week"
	Priority             Priority
	NotificationsEnabled bool
	NotificationTime     *string // "HH:MM", nil when unset
	CompletedDates       []string
	AIGenerated          bool
	CreatedAt            time.Time
}

// MarkCompleted records a completion for the given calendar day.
// Duplicate completions for the same day are a no-op.
func (h *Habit) MarkCompleted(date string) {
	if h.IsCompletedOn(date) {
		return
	}
	h.CompletedDates = append(h.CompletedDates, date)
}

// UnmarkCompleted removes a completion for the given calendar day, if present.
func (h *Habit) UnmarkCompleted(date string) {
	for i, d := range h.CompletedDates {
		if d == date {
			h.CompletedDates = append(h.CompletedDates[:i], h.CompletedDates[i+1:]...)
			return
		}
	}
}

// IsCompletedOn reports whether the habit was completed on the given day.
func (h *Habit) IsCompletedOn(date string) bool {
	for _, d := range h.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}

// DayString formats a time as a calendar-day completion date.
func DayString(t time.Time) string {
	return t.Format(DateLayout)
}

// DailyRoutine is an AI-suggested block of activities for a part of the day.
type DailyRoutine struct {
	ID              string
	UserID          string
	TimeOfDay       TimeOfDay
	Activities      []string
	DurationMinutes int
	CreatedAt       time.Time
}
