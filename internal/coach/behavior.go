package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stridehq/stride/internal/domain"
	"github.com/stridehq/stride/internal/llm"
)

// BehaviorService turns an activity digest into a behavior analysis.
type BehaviorService interface {
	Analyze(ctx context.Context, digest ActivityDigest) (*domain.BehaviorAnalysis, error)
}

type behaviorService struct {
	client llm.Client
}

// NewBehaviorService creates a BehaviorService backed by an AI client.
func NewBehaviorService(client llm.Client) BehaviorService {
	return &behaviorService{client: client}
}

func (s *behaviorService) Analyze(ctx context.Context, digest ActivityDigest) (*domain.BehaviorAnalysis, error) {
	if len(digest.Habits) == 0 {
		return nil, fmt.Errorf("activity digest has no habits: %w", ErrEmptyInput)
	}

	payload, err := json.MarshalIndent(digest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling activity digest: %w", err)
	}

	resp, err := s.client.Complete(ctx, llm.TaskBehavior, []llm.Message{
		{Role: "system", Content: behaviorSystemPrompt},
		{Role: "user", Content: "Analyze this activity digest:\n" + string(payload)},
	})
	if err != nil {
		return nil, fmt.Errorf("behavior analysis: %w", err)
	}

	analysis, err := llm.ExtractJSON[domain.BehaviorAnalysis](resp.Text, validateAnalysis)
	if err != nil {
		return nil, fmt.Errorf("behavior analysis: %w", err)
	}
	analysis.PromptVersion = PromptVersion
	return &analysis, nil
}
