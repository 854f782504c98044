package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/stridehq/stride/internal/domain"
	"github.com/stridehq/stride/internal/llm"
)

// PsychologyService extracts a motivational-psychology profile from the
// three deep-dive onboarding answers.
type PsychologyService interface {
	ExtractProfile(ctx context.Context, answers domain.PsychologyAnswers) (*domain.PsychologyProfile, error)
}

type psychologyService struct {
	client llm.Client
}

// NewPsychologyService creates a PsychologyService backed by an AI client.
func NewPsychologyService(client llm.Client) PsychologyService {
	return &psychologyService{client: client}
}

func (s *psychologyService) ExtractProfile(ctx context.Context, answers domain.PsychologyAnswers) (*domain.PsychologyProfile, error) {
	if strings.TrimSpace(answers.SelfTalkUnderFailure) == "" &&
		strings.TrimSpace(answers.SuccessDefinition) == "" &&
		strings.TrimSpace(answers.PersistenceStory) == "" {
		return nil, fmt.Errorf("psychology answers: %w", ErrEmptyInput)
	}

	userMessage := fmt.Sprintf(`User's Answers:

1. When you fail at something you care about, what does the voice in your head say?
%s

2. What does success look like to you?
%s

3. Tell me about a time you kept going when you wanted to quit.
%s`,
		answers.SelfTalkUnderFailure,
		answers.SuccessDefinition,
		answers.PersistenceStory,
	)

	resp, err := s.client.Complete(ctx, llm.TaskPsychology, []llm.Message{
		{Role: "system", Content: psychologySystemPrompt},
		{Role: "user", Content: userMessage},
	})
	if err != nil {
		return nil, fmt.Errorf("psychology extraction: %w", err)
	}

	profile, err := llm.ExtractJSON[domain.PsychologyProfile](resp.Text, validateProfile)
	if err != nil {
		return nil, fmt.Errorf("psychology extraction: %w", err)
	}
	return &profile, nil
}
