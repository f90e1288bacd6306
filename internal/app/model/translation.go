package model

import (
	"fmt"
	"slices"
	"time"
)

// TimestampLayout is the ISO-8601 layout used for generated timestamps.
// Caller-supplied timestamps are stored as given.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// TranslationRecord represents one captured clip and its transcript.
// This matches the `translations` table/collection layout used by every backend.
type TranslationRecord struct {
	ID        int64   `json:"id"`
	Timestamp string  `json:"timestamp"`
	Text      string  `json:"text"`
	AudioURL  string  `json:"audioUrl,omitempty"` // derived on read, never persisted
	Duration  float64 `json:"duration"`
	AudioData []byte  `json:"audioData,omitempty"`
	MimeType  string  `json:"mimeType,omitempty"`
}

// HasAudio reports whether the record carries a playable payload.
func (t *TranslationRecord) HasAudio() bool {
	return len(t.AudioData) > 0 && t.MimeType != ""
}

// NewTranslation is the input to the store's Add operation. The id is always assigned by the backend.
type NewTranslation struct {
	Text      string
	AudioData []byte
	MimeType  string
	Timestamp string
	Duration  float64
}

// TranslationPatch carries the fields an update may replace.
type TranslationPatch struct {
	Text      string
	Timestamp string
}

// FormatTimestamp renders t the way records store it.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts the stored layout and any RFC 3339 value.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q is not ISO-8601: %w", s, err)
	}
	return t, nil
}

// SortNewestFirst orders records by parsed timestamp, latest first. Ties keep
// their incoming order. Unparseable timestamps sort last.
func SortNewestFirst(records []TranslationRecord) {
	slices.SortStableFunc(records, func(a, b TranslationRecord) int {
		ta, _ := ParseTimestamp(a.Timestamp)
		tb, _ := ParseTimestamp(b.Timestamp)
		return tb.Compare(ta)
	})
}
