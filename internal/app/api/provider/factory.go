package provider

import (
	"context"
	"fmt"
	"time"

	"voice-notes/internal/app/api"
	"voice-notes/internal/app/api/gemini"
	"voice-notes/internal/app/api/mock"
	openaiclient "voice-notes/internal/app/api/openai"
	"voice-notes/internal/app/api/openai/whisper"
	"voice-notes/internal/config"
)

// AvailableProviders lists the translator names accepted by NewTranslationClient.
var AvailableProviders = []string{config.TranslatorMock, config.TranslatorOpenAI, config.TranslatorGemini}

// NewTranslationClient builds the backend selected by cfg.Provider.
func NewTranslationClient(ctx context.Context, cfg config.TranslatorConfig) (api.TranslationClient, error) {
	switch cfg.Provider {
	case config.TranslatorMock, "":
		return mock.NewTranslator(
			time.Duration(cfg.MockMinDelayMs)*time.Millisecond,
			time.Duration(cfg.MockMaxDelayMs)*time.Millisecond,
		), nil
	case config.TranslatorOpenAI:
		client, err := openaiclient.NewClient(openaiclient.ClientOptions{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout(),
		})
		if err != nil {
			return nil, fmt.Errorf("openai translator: %w", err)
		}
		return whisper.NewRemoteTranslator(client, whisper.WithModel(cfg.Model), whisper.WithLanguage(cfg.Language)), nil
	case config.TranslatorGemini:
		t, err := gemini.NewTranslator(ctx, gemini.Options{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini translator: %w", err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Provider)
	}
}
