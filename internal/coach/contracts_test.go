package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/stride/internal/domain"
)

func validPlan() GoalPlan {
	return GoalPlan{
		Classification: domain.CategoryHybrid,
		DailyRoutines: []PlannedRoutine{
			{TimeOfDay: domain.TimeMorning, Activities: []string{"stretch", "water"}, DurationMinutes: 10},
		},
		Habits: []PlannedHabit{
			{Name: "Morning walk", Description: "20 minute walk", Category: domain.CategoryPhysical, DurationMinutes: 20, Frequency: "daily", Priority: domain.PriorityHigh},
			{Name: "Journal", Description: "Evening reflection", Category: domain.CategoryMental, DurationMinutes: 10, Frequency: "daily", Priority: domain.PriorityMedium},
			{Name: "Meditate", Description: "Breathing practice", Category: domain.CategoryMental, DurationMinutes: 5, Frequency: "5x/week", Priority: domain.PriorityLow},
		},
	}
}

func TestValidateGoalPlan_Valid(t *testing.T) {
	assert.NoError(t, validateGoalPlan(validPlan()))
}

func TestValidateGoalPlan_HabitCountBounds(t *testing.T) {
	p := validPlan()
	p.Habits = p.Habits[:2]
	require.Error(t, validateGoalPlan(p))

	p = validPlan()
	for len(p.Habits) <= maxPlanHabits {
		p.Habits = append(p.Habits, p.Habits[0])
	}
	require.Error(t, validateGoalPlan(p))
}

func TestValidateGoalPlan_DurationBounds(t *testing.T) {
	p := validPlan()
	p.Habits[0].DurationMinutes = 4
	assert.Error(t, validateGoalPlan(p))

	p = validPlan()
	p.Habits[0].DurationMinutes = 61
	assert.Error(t, validateGoalPlan(p))
}

func TestValidateGoalPlan_UnknownEnums(t *testing.T) {
	p := validPlan()
	p.Classification = "spiritual"
	assert.Error(t, validateGoalPlan(p))

	p = validPlan()
	p.Habits[1].Priority = "urgent"
	assert.Error(t, validateGoalPlan(p))

	p = validPlan()
	p.DailyRoutines[0].TimeOfDay = "midnight"
	assert.Error(t, validateGoalPlan(p))
}

func TestValidateRefinement(t *testing.T) {
	ok := HabitRefinement{
		Name:             "Evening pages",
		Description:      "Write three short pages before bed to clear your head.",
		Category:         domain.CategoryMental,
		NotificationCopy: "Time to write!",
	}
	assert.NoError(t, validateRefinement(ok))

	missing := ok
	missing.Name = ""
	assert.Error(t, validateRefinement(missing))

	long := ok
	for len(long.Name) <= maxRefinedNameLen {
		long.Name += " and more"
	}
	assert.Error(t, validateRefinement(long))

	badCat := ok
	badCat.Category = "productivity"
	assert.Error(t, validateRefinement(badCat))
}

func TestValidateAnalysis(t *testing.T) {
	ok := domain.BehaviorAnalysis{
		Insights: []domain.Insight{
			{Kind: domain.InsightSuccess, Title: "Mornings stick", Description: "Morning habits hold up", Confidence: domain.RiskHigh},
		},
		Recommendations: []domain.HabitRecommendation{
			{HabitName: "Morning walk", Action: domain.ActionContinue, Reason: "90% completion"},
		},
		RiskFactors: []domain.RiskFactor{
			{Factor: "weekend drop-off", Severity: domain.RiskMedium, Evidence: "0 completions on Saturdays"},
		},
	}
	assert.NoError(t, validateAnalysis(ok))

	empty := ok
	empty.Insights = nil
	assert.Error(t, validateAnalysis(empty))

	badKind := ok
	badKind.Insights = []domain.Insight{{Kind: "miracle", Confidence: domain.RiskLow}}
	assert.Error(t, validateAnalysis(badKind))

	badAction := ok
	badAction.Recommendations = []domain.HabitRecommendation{{HabitName: "x", Action: "supercharge"}}
	assert.Error(t, validateAnalysis(badAction))
}
