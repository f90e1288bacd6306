package api

import "context"

// TranslationClient turns a recorded audio payload into text.
// Implementations are injected at construction and never hard-wired.
type TranslationClient interface {
	Translate(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// Named is implemented by clients that report a provider name for logs and metrics.
type Named interface {
	Name() string
}

// ProviderName returns the client's provider name, or "unknown".
func ProviderName(c TranslationClient) string {
	if n, ok := c.(Named); ok {
		return n.Name()
	}
	return "unknown"
}
