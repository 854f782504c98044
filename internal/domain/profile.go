package domain

import "time"

// PsychologyProfile is a derived summary of a user's motivational psychology,
// extracted once from three free-text onboarding answers. It only changes by
// re-running the extraction. The JSON tags are the AI output contract for the
// psychology-extraction prompt.
type PsychologyProfile struct {
	UserID string `json:"-"`

	SelfTalkPattern  string `json:"selfTalkPattern"`
	MotivationSource string `json:"motivationSource"`
	ResilienceStyle  string `json:"resilienceStyle"`

	CoachingTone       CoachingTone       `json:"coachingTone"`
	AccountabilityType AccountabilityType `json:"accountabilityType"`

	CoreValues []string `json:"coreValues"`
	Motivators []string `json:"motivators"`
	Barriers   []string `json:"barriers"`
	Strengths  []string `json:"strengths"`

	BurnoutRisk   RiskLevel `json:"burnoutRisk"`
	Perfectionism RiskLevel `json:"perfectionism"`

	NeedsStructure bool `json:"needsStructure"`
	NeedsCommunity bool `json:"needsCommunity"`

	CreatedAt time.Time `json:"-"`
}

// PsychologyAnswers are the three free-text answers the extraction runs on.
type PsychologyAnswers struct {
	SelfTalkUnderFailure string
	SuccessDefinition    string
	PersistenceStory     string
}
