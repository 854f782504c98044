package domain

import "time"

// ChatMessage is one turn in a user's coaching conversation.
// Messages are immutable once created and ordered by Timestamp ascending.
type ChatMessage struct {
	ID        string
	UserID    string
	Role      ChatRole
	Content   string
	Timestamp time.Time
}

// OnboardingAnswers are the five free-text answers gathered during onboarding.
type OnboardingAnswers struct {
	PhysicalGoals        string
	MentalWellnessGoals  string
	LifestylePreferences string
	TimeAvailability     string
	MotivationStyle      string
}
