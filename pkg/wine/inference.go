package wine

import (
	"context"
	"fmt"

	"wine-club-be/pkg/llm"
)

const DefaultMaxTokens = 500

// Inference issues exactly one vision request per image. It does not retry.
type Inference struct {
	provider  llm.VisionProvider
	maxTokens int
}

func NewInference(provider llm.VisionProvider, maxTokens int) *Inference {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Inference{provider: provider, maxTokens: maxTokens}
}

// Run returns the model's raw reply. Any transport or endpoint failure is reported as ErrInferenceUnavailable.
func (i *Inference) Run(ctx context.Context, image llm.Image) (string, error) {
	raw, err := i.provider.Describe(ctx, IdentificationPrompt, image, llm.WithMaxTokens(i.maxTokens))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInferenceUnavailable, err)
	}
	return raw, nil
}
