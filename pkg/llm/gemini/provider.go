package gemini

import (
	"context"
	"fmt"
	"strings"

	"wine-club-be/pkg/llm"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

// GeminiProvider uses the Google GenAI SDK against the Gemini API backend.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

var _ llm.VisionProvider = &GeminiProvider{}

// NewGeminiProvider builds a client for the Gemini API. An empty baseURL keeps the SDK default.
func NewGeminiProvider(ctx context.Context, apiKey, baseURL, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := &llm.Options{
		Model:     p.model,
		MaxTokens: 500,
	}
	for _, o := range options {
		o(opts)
	}

	var system *genai.Content
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		if msg.Role == "system" {
			system = genai.NewContentFromText(msg.Content, genai.RoleUser)
			continue
		}
		role := genai.Role(genai.RoleUser)
		if msg.Role == "assistant" || msg.Role == "model" {
			role = genai.RoleModel
		}
		parts := []*genai.Part{genai.NewPartFromText(msg.Content)}
		for _, img := range msg.Images {
			parts = append(parts, genai.NewPartFromBytes(img.Data, img.MimeType))
		}
		contents = append(contents, genai.NewContentFromParts(parts, role))
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: system,
		MaxOutputTokens:   int32(opts.MaxTokens),
	}
	if opts.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(opts.Temperature))
	}

	resp, err := p.client.Models.GenerateContent(ctx, opts.Model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty candidates from gemini api")
	}
	return text, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func (p *GeminiProvider) Describe(ctx context.Context, prompt string, image llm.Image, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt, Images: []llm.Image{image}}}, options...)
}
