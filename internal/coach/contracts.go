package coach

import (
	"fmt"
	"time"

	"github.com/stridehq/stride/internal/domain"
)

// PlannedRoutine is one daily-routine block in an onboarding plan.
type PlannedRoutine struct {
	TimeOfDay       domain.TimeOfDay `json:"timeOfDay"`
	Activities      []string         `json:"activities"`
	DurationMinutes int              `json:"durationMinutes"`
}

// PlannedHabit is one habit suggestion in an onboarding plan.
type PlannedHabit struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        domain.Category `json:"category"`
	DurationMinutes int             `json:"durationMinutes"`
	Frequency       string          `json:"frequency"`
	Priority        domain.Priority `json:"priority"`
}

// GoalPlan is the structured output of onboarding classification.
type GoalPlan struct {
	Classification domain.Category  `json:"classification"`
	DailyRoutines  []PlannedRoutine `json:"dailyRoutines"`
	Habits         []PlannedHabit   `json:"habits"`
}

const (
	minPlanHabits    = 3
	maxPlanHabits    = 5
	minHabitDuration = 5
	maxHabitDuration = 60
)

func validateGoalPlan(p GoalPlan) error {
	if !domain.ValidCategories[p.Classification] {
		return fmt.Errorf("classification %q is not a known category", p.Classification)
	}
	if n := len(p.Habits); n < minPlanHabits || n > maxPlanHabits {
		return fmt.Errorf("plan has %d habits, want %d-%d", n, minPlanHabits, maxPlanHabits)
	}
	for i, h := range p.Habits {
		if h.Name == "" {
			return fmt.Errorf("habit %d has no name", i)
		}
		if !domain.ValidCategories[h.Category] {
			return fmt.Errorf("habit %q has unknown category %q", h.Name, h.Category)
		}
		if h.DurationMinutes < minHabitDuration || h.DurationMinutes > maxHabitDuration {
			return fmt.Errorf("habit %q duration %d outside %d-%d minutes",
				h.Name, h.DurationMinutes, minHabitDuration, maxHabitDuration)
		}
		if !domain.ValidPriorities[h.Priority] {
			return fmt.Errorf("habit %q has unknown priority %q", h.Name, h.Priority)
		}
	}
	for i, r := range p.DailyRoutines {
		if !domain.ValidTimesOfDay[r.TimeOfDay] {
			return fmt.Errorf("routine %d has unknown timeOfDay %q", i, r.TimeOfDay)
		}
		if len(r.Activities) == 0 {
			return fmt.Errorf("routine %d has no activities", i)
		}
	}
	return nil
}

// HabitRefinement is the structured output of refining a free-text habit idea.
type HabitRefinement struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Category         domain.Category `json:"category"`
	NotificationCopy string          `json:"notificationCopy"`
}

const (
	maxRefinedNameLen        = 50
	maxRefinedDescriptionLen = 150
)

func validateRefinement(r HabitRefinement) error {
	if r.Name == "" {
		return fmt.Errorf("refinement has no name")
	}
	if len(r.Name) > maxRefinedNameLen {
		return fmt.Errorf("refined name is %d chars, contract caps it at %d", len(r.Name), maxRefinedNameLen)
	}
	if r.Description == "" {
		return fmt.Errorf("refinement has no description")
	}
	if len(r.Description) > maxRefinedDescriptionLen {
		return fmt.Errorf("refined description is %d chars, contract caps it at %d", len(r.Description), maxRefinedDescriptionLen)
	}
	if !domain.ValidCategories[r.Category] {
		return fmt.Errorf("refinement has unknown category %q", r.Category)
	}
	return nil
}

func validateProfile(p domain.PsychologyProfile) error {
	if !domain.ValidCoachingTones[p.CoachingTone] {
		return fmt.Errorf("unknown coachingTone %q", p.CoachingTone)
	}
	if !domain.ValidAccountabilityTypes[p.AccountabilityType] {
		return fmt.Errorf("unknown accountabilityType %q", p.AccountabilityType)
	}
	if !domain.ValidRiskLevels[p.BurnoutRisk] {
		return fmt.Errorf("unknown burnoutRisk %q", p.BurnoutRisk)
	}
	if !domain.ValidRiskLevels[p.Perfectionism] {
		return fmt.Errorf("unknown perfectionism %q", p.Perfectionism)
	}
	return nil
}

func validateAnalysis(a domain.BehaviorAnalysis) error {
	if len(a.Insights) == 0 {
		return fmt.Errorf("analysis has no insights")
	}
	for i, ins := range a.Insights {
		if !domain.ValidInsightKinds[ins.Kind] {
			return fmt.Errorf("insight %d has unknown type %q", i, ins.Kind)
		}
		if !domain.ValidRiskLevels[ins.Confidence] {
			return fmt.Errorf("insight %d has unknown confidence %q", i, ins.Confidence)
		}
	}
	for i, rec := range a.Recommendations {
		if rec.HabitName == "" {
			return fmt.Errorf("recommendation %d names no habit", i)
		}
		if !domain.ValidRecommendationActions[rec.Action] {
			return fmt.Errorf("recommendation %d has unknown action %q", i, rec.Action)
		}
	}
	for i, rf := range a.RiskFactors {
		if !domain.ValidRiskLevels[rf.Severity] {
			return fmt.Errorf("risk factor %d has unknown severity %q", i, rf.Severity)
		}
	}
	return nil
}

// HabitActivity is the per-habit slice of the activity digest sent to the
// behavior-analysis prompt.
type HabitActivity struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         domain.Category `json:"category"`
	CompletionRate   float64         `json:"completionRate"` // completions in window / window days
	TotalCompletions int             `json:"totalCompletions"`
	CurrentStreak    int             `json:"currentStreak"`
	LongestStreak    int             `json:"longestStreak"`
	LastCompleted    *time.Time      `json:"lastCompleted,omitempty"`
}

// ActivityDigest is the full structured input for a behavior analysis run.
type ActivityDigest struct {
	Habits           []HabitActivity           `json:"habits"`
	RecentChatThemes []string                  `json:"recentChatThemes"`
	TimeframeStart   time.Time                 `json:"timeframeStart"`
	TimeframeEnd     time.Time                 `json:"timeframeEnd"`
	DaysTracked      int                       `json:"daysTracked"`
	Profile          *domain.PsychologyProfile `json:"psychologyProfile,omitempty"`
}
