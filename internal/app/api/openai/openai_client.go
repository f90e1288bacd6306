package openai

import (
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	apperrors "voice-notes/internal/app/errors"
)

// ClientOptions configures an OpenAI-compatible API client.
type ClientOptions struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewClient builds a go-openai client. BaseURL may point at any OpenAI-compatible server.
func NewClient(opts ClientOptions) (*openai.Client, error) {
	if opts.APIKey == "" {
		return nil, apperrors.ErrMissingAPIKey
	}

	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.Timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	return openai.NewClientWithConfig(cfg), nil
}
