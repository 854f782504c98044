package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/stridehq/stride/internal/llm"
)

// RefinementService turns a free-text habit idea into a structured habit.
type RefinementService interface {
	Refine(ctx context.Context, habitText string) (*HabitRefinement, error)
}

type refinementService struct {
	client llm.Client
}

// NewRefinementService creates a RefinementService backed by an AI client.
func NewRefinementService(client llm.Client) RefinementService {
	return &refinementService{client: client}
}

func (s *refinementService) Refine(ctx context.Context, habitText string) (*HabitRefinement, error) {
	habitText = strings.TrimSpace(habitText)
	if habitText == "" {
		return nil, fmt.Errorf("habit idea: %w", ErrEmptyInput)
	}

	resp, err := s.client.Complete(ctx, llm.TaskRefine, []llm.Message{
		{Role: "system", Content: refinementSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Refine this habit: %q", habitText)},
	})
	if err != nil {
		return nil, fmt.Errorf("habit refinement: %w", err)
	}

	refined, err := llm.ExtractJSON[HabitRefinement](resp.Text, validateRefinement)
	if err != nil {
		return nil, fmt.Errorf("habit refinement: %w", err)
	}
	return &refined, nil
}
