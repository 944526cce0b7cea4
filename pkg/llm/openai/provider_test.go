package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wine-club-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIProvider_Describe(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"name\":\"Opus One\"}"}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider("sk-test", srv.URL, "", time.Second)
	img := llm.Image{MimeType: "image/png", Base64: "aGVsbG8="}

	reply, err := p.Describe(context.Background(), "Identify this wine", img, llm.WithMaxTokens(500))
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Opus One"}`, reply)

	assert.Equal(t, DefaultModel, got["model"])
	assert.EqualValues(t, 500, got["max_tokens"])

	messages := got["messages"].([]interface{})
	require.Len(t, messages, 1)
	parts := messages[0].(map[string]interface{})["content"].([]interface{})
	require.Len(t, parts, 2)
	assert.Equal(t, "Identify this wine", parts[0].(map[string]interface{})["text"])
	imagePart := parts[1].(map[string]interface{})
	assert.Equal(t, "image_url", imagePart["type"])
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", imagePart["image_url"].(map[string]interface{})["url"])
}

func TestOpenAIProvider_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus bool
	}{
		{name: "non 2xx status", status: http.StatusTooManyRequests, body: `{"error":{"message":"rate limited"}}`, wantStatus: true},
		{name: "error object in 200", status: http.StatusOK, body: `{"error":{"message":"bad image"}}`},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`},
		{name: "not json", status: http.StatusOK, body: `<html>gateway</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := NewOpenAIProvider("", srv.URL, "gpt-4o-mini", time.Second)
			_, err := p.Describe(context.Background(), "prompt", llm.Image{MimeType: "image/jpeg"})
			require.Error(t, err)

			var statusErr *llm.StatusError
			assert.Equal(t, tt.wantStatus, errors.As(err, &statusErr))
			if tt.wantStatus {
				assert.Equal(t, tt.status, statusErr.StatusCode)
			}
		})
	}
}

func TestOpenAIProvider_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := NewOpenAIProvider("", url, "", time.Second)
	_, err := p.Generate(context.Background(), "hello")
	assert.Error(t, err)
}
