package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/stridehq/stride/internal/domain"
	"github.com/stridehq/stride/internal/llm"
)

// OnboardingService turns the five onboarding answers into a classified
// plan of habits and daily routines.
type OnboardingService interface {
	AnalyzeAnswers(ctx context.Context, answers domain.OnboardingAnswers) (*GoalPlan, error)
}

type onboardingService struct {
	client llm.Client
}

// NewOnboardingService creates an OnboardingService backed by an AI client.
func NewOnboardingService(client llm.Client) OnboardingService {
	return &onboardingService{client: client}
}

func (s *onboardingService) AnalyzeAnswers(ctx context.Context, answers domain.OnboardingAnswers) (*GoalPlan, error) {
	if strings.TrimSpace(answers.PhysicalGoals) == "" &&
		strings.TrimSpace(answers.MentalWellnessGoals) == "" {
		return nil, fmt.Errorf("onboarding answers: %w", ErrEmptyInput)
	}

	userMessage := fmt.Sprintf(`User's Onboarding Responses:
- Physical Goals: %s
- Mental Wellness Goals: %s
- Lifestyle Preferences: %s
- Time Availability: %s
- Motivation Style: %s

Create a personalized plan based on these responses.`,
		answers.PhysicalGoals,
		answers.MentalWellnessGoals,
		answers.LifestylePreferences,
		answers.TimeAvailability,
		answers.MotivationStyle,
	)

	resp, err := s.client.Complete(ctx, llm.TaskOnboarding, []llm.Message{
		{Role: "system", Content: onboardingSystemPrompt},
		{Role: "user", Content: userMessage},
	})
	if err != nil {
		return nil, fmt.Errorf("onboarding analysis: %w", err)
	}

	plan, err := llm.ExtractJSON[GoalPlan](resp.Text, validateGoalPlan)
	if err != nil {
		return nil, fmt.Errorf("onboarding analysis: %w", err)
	}
	return &plan, nil
}
