package domain

import "time"

// Insight is a single observation from a behavior analysis run.
type Insight struct {
	Kind        InsightKind `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Confidence  RiskLevel   `json:"confidence"` // low/medium/high
}

// HabitRecommendation is a per-habit action suggested by the analysis.
type HabitRecommendation struct {
	HabitID            string               `json:"habitId,omitempty"`
	HabitName          string               `json:"habitName"`
	Action             RecommendationAction `json:"action"`
	Reason             string               `json:"reason"`
	SuggestedFrequency string               `json:"suggestedFrequency,omitempty"`
	SuggestedDuration  int                  `json:"suggestedDuration,omitempty"`
	SuggestedTimeOfDay TimeOfDay            `json:"suggestedTimeOfDay,omitempty"`
}

// RiskFactor flags something that threatens the user's consistency.
type RiskFactor struct {
	Factor   string    `json:"factor"`
	Severity RiskLevel `json:"severity"`
	Evidence string    `json:"evidence"`
}

// BehaviorAnalysis is one snapshot of the periodic behavior-pattern report.
type BehaviorAnalysis struct {
	ID     string `json:"-"`
	UserID string `json:"-"`

	Insights           []Insight             `json:"insights"`
	Recommendations    []HabitRecommendation `json:"habitRecommendations"`
	MotivationalThemes []string              `json:"motivationalThemes"`
	RiskFactors        []RiskFactor          `json:"riskFactors"`
	NextSteps          []string              `json:"nextSteps"`
	Celebrations       []string              `json:"celebrations"`

	// PromptVersion records which prompt-catalog revision produced this
	// snapshot. Stamped after parsing, never supplied by the model.
	PromptVersion string `json:"promptVersion,omitempty"`

	AnalyzedAt     time.Time `json:"-"`
	TimeframeStart time.Time `json:"-"`
	TimeframeEnd   time.Time `json:"-"`
	DaysTracked    int       `json:"-"`
	Viewed         bool      `json:"-"`
}
