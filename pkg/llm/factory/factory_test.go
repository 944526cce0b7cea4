package factory

import (
	"context"
	"testing"

	"wine-club-be/pkg/llm/ollama"
	"wine-club-be/pkg/llm/openai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVisionProvider(t *testing.T) {
	p, err := NewVisionProvider(context.Background(), VisionConfig{})
	require.NoError(t, err)
	assert.IsType(t, &openai.OpenAIProvider{}, p)

	p, err = NewVisionProvider(context.Background(), VisionConfig{Provider: "ollama"})
	require.NoError(t, err)
	require.IsType(t, &ollama.OllamaProvider{}, p)
	assert.Equal(t, "llava", p.(*ollama.OllamaProvider).ModelName)
	assert.Equal(t, "http://localhost:11434", p.(*ollama.OllamaProvider).BaseURL)

	_, err = NewVisionProvider(context.Background(), VisionConfig{Provider: "unknown-backend"})
	assert.Error(t, err)
}
