package factory

import (
	"context"
	"fmt"
	"time"

	"wine-club-be/pkg/llm"
	"wine-club-be/pkg/llm/gemini"
	"wine-club-be/pkg/llm/ollama"
	"wine-club-be/pkg/llm/openai"
)

type VisionConfig struct {
	Provider string // "openai", "ollama" or "gemini"
	Model    string
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
}

func NewVisionProvider(ctx context.Context, cfg VisionConfig) (llm.VisionProvider, error) {
	switch cfg.Provider {
	case "openai", "":
		return openai.NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout), nil
	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = ollama.DefaultBaseURL
		}
		model := cfg.Model
		if model == "" {
			model = ollama.DefaultModel
		}
		return ollama.NewOllamaProvider(baseURL, model, cfg.Timeout), nil
	case "gemini":
		return gemini.NewGeminiProvider(ctx, cfg.APIKey, cfg.BaseURL, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported vision provider: %s", cfg.Provider)
	}
}
