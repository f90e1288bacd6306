package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"voice-notes/internal/app/codec"
	apperrors "voice-notes/internal/app/errors"
)

const (
	providerName = "gemini"

	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.0-flash"

	defaultPrompt = "Transcribe this audio recording verbatim. Reply with the transcript only."
)

// Options configures a Gemini translator.
type Options struct {
	APIKey  string
	Model   string
	BaseURL string
	Prompt  string
}

// Translator sends inline audio to a Gemini model and returns its transcript.
type Translator struct {
	client *genai.Client
	model  string
	prompt string
}

// NewTranslator creates a Gemini-backed translator.
func NewTranslator(ctx context.Context, opts Options) (*Translator, error) {
	if opts.APIKey == "" {
		return nil, apperrors.ErrMissingAPIKey
	}

	cfg := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create gemini client")
	}

	t := &Translator{client: client, model: opts.Model, prompt: opts.Prompt}
	if t.model == "" {
		t.model = DefaultModel
	}
	if t.prompt == "" {
		t.prompt = defaultPrompt
	}
	return t, nil
}

// Name implements api.Named
func (t *Translator) Name() string { return providerName }

// Translate implements api.TranslationClient
func (t *Translator) Translate(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", apperrors.NewTranscriptionError(providerName, apperrors.New("empty audio payload"))
	}
	if mimeType == "" {
		mimeType = codec.DetectMimeType(audio)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(t.prompt),
		genai.NewPartFromBytes(audio, codec.BaseMimeType(mimeType)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := t.client.Models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return "", apperrors.NewTranscriptionError(providerName, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", apperrors.NewTranscriptionError(providerName, apperrors.New("model returned no text"))
	}
	return text, nil
}
