package llm

import (
	"context"
	"fmt"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
	Images  []Image
}

// Image is an inline image attached to a message.
// Base64 holds the standard base64 encoding of Data.
type Image struct {
	MimeType string
	Data     []byte
	Base64   string
}

// DataURI renders the image as a data: URI.
func (i Image) DataURI() string {
	return "data:" + i.MimeType + ";base64," + i.Base64
}

// Option allows for optional parameters like MaxTokens or a model override.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

// VisionProvider is an LLMProvider that also accepts an image alongside the prompt.
type VisionProvider interface {
	LLMProvider

	// Describe sends one prompt plus one image and returns the raw text reply.
	Describe(ctx context.Context, prompt string, image Image, options ...Option) (string, error)
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s api error (status %d): %s", e.Provider, e.StatusCode, e.Body)
}
