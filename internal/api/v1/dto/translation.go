package dto

import (
	"voice-notes/internal/api/errors"
	"voice-notes/internal/app/codec"
	"voice-notes/internal/app/model"
	"voice-notes/internal/app/util/display"
)

// AudioPathPrefix is where playback handles are served.
const AudioPathPrefix = "/api/v1/audio/"

// CreateTranslationRequest creates a record. Audio is a data URL or a bare
// base64 body; when Text is empty the audio is transcribed first.
type CreateTranslationRequest struct {
	Text      string  `json:"text,omitempty"`
	Audio     string  `json:"audio,omitempty"`
	MimeType  string  `json:"mimeType,omitempty"`
	Duration  float64 `json:"duration,omitempty" binding:"gte=0"`
	Timestamp string  `json:"timestamp,omitempty"`
}

// Validate performs domain-specific validation
func (r *CreateTranslationRequest) Validate() error {
	validationErrors := make(map[string]string)

	if r.Text == "" && r.Audio == "" {
		validationErrors["audio"] = "audio is required when text is empty"
	}
	if r.Timestamp != "" {
		if _, err := model.ParseTimestamp(r.Timestamp); err != nil {
			validationErrors["timestamp"] = "must be ISO-8601"
		}
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid translation request", validationErrors)
	}
	return nil
}

// UpdateTranslationRequest replaces a record's text.
type UpdateTranslationRequest struct {
	Text string `json:"text" binding:"required"`
}

// TranslationResponse represents a translation in API responses
type TranslationResponse struct {
	ID             int64   `json:"id"`
	Timestamp      string  `json:"timestamp"`
	Text           string  `json:"text"`
	Preview        string  `json:"preview"`
	Duration       float64 `json:"duration"`
	DurationLabel  string  `json:"durationLabel,omitempty"`
	MimeType       string  `json:"mimeType,omitempty"`
	AudioURL       string  `json:"audioUrl,omitempty"`
	AudioHandle    string  `json:"audioHandle,omitempty"`
	AudioSize      int     `json:"audioSize,omitempty"`
	AudioSizeLabel string  `json:"audioSizeLabel,omitempty"`
}

// ListTranslationsResponse wraps a full listing
type ListTranslationsResponse struct {
	Translations []TranslationResponse `json:"translations"`
	Total        int                   `json:"total"`
}

// Base64Response is a record's audio in transportable form
type Base64Response struct {
	ID        int64  `json:"id"`
	MimeType  string `json:"mimeType"`
	DataURL   string `json:"dataUrl"`
	Body      string `json:"body"`
	Size      int    `json:"size"`
	SizeLabel string `json:"sizeLabel"`
}

// FromRecord converts a store record. The playback handle becomes a path
// under AudioPathPrefix.
func FromRecord(rec *model.TranslationRecord) TranslationResponse {
	resp := TranslationResponse{
		ID:            rec.ID,
		Timestamp:     rec.Timestamp,
		Text:          rec.Text,
		Preview:       display.Truncate(rec.Text, display.DefaultTruncateLength),
		Duration:      rec.Duration,
		DurationLabel: display.FormatDuration(rec.Duration),
		MimeType:      rec.MimeType,
	}
	if rec.AudioURL != "" {
		h := codec.Handle(rec.AudioURL)
		resp.AudioHandle = string(h)
		resp.AudioURL = AudioPathPrefix + h.ID()
	}
	if n := len(rec.AudioData); n > 0 {
		resp.AudioSize = n
		resp.AudioSizeLabel = codec.SizeLabel(int64(n))
	}
	return resp
}

// FromRecords converts a listing.
func FromRecords(records []model.TranslationRecord) *ListTranslationsResponse {
	out := make([]TranslationResponse, 0, len(records))
	for i := range records {
		out = append(out, FromRecord(&records[i]))
	}
	return &ListTranslationsResponse{Translations: out, Total: len(out)}
}
