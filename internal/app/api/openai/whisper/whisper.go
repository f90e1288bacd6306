package whisper

import (
	"bytes"
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"

	"voice-notes/internal/app/codec"
	apperrors "voice-notes/internal/app/errors"
)

const providerName = "openai"

// RemoteTranslator transcribes audio using the OpenAI audio API.
type RemoteTranslator struct {
	client   *openai.Client
	model    string
	language string
}

// Option customises a RemoteTranslator.
type Option func(*RemoteTranslator)

// WithModel overrides the transcription model (whisper-1 by default).
func WithModel(model string) Option {
	return func(rt *RemoteTranslator) {
		if model != "" {
			rt.model = model
		}
	}
}

// WithLanguage sets an ISO-639-1 language hint.
func WithLanguage(language string) Option {
	return func(rt *RemoteTranslator) { rt.language = language }
}

// NewRemoteTranslator creates a new RemoteTranslator instance.
func NewRemoteTranslator(client *openai.Client, opts ...Option) *RemoteTranslator {
	rt := &RemoteTranslator{client: client, model: openai.Whisper1}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Name implements api.Named
func (rt *RemoteTranslator) Name() string { return providerName }

// Translate uploads the payload in memory; nothing touches the filesystem.
func (rt *RemoteTranslator) Translate(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", apperrors.NewTranscriptionError(providerName, apperrors.New("empty audio payload"))
	}

	req := openai.AudioRequest{
		Model:    rt.model,
		FilePath: "recording" + codec.ExtensionForMimeType(mimeType),
		Reader:   bytes.NewReader(audio),
		Language: rt.language,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", apperrors.NewTranscriptionError(providerName, err)
	}

	return strings.TrimSpace(resp.Text), nil
}
