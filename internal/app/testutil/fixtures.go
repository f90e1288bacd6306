package testutil

import (
	"time"

	"voice-notes/internal/app/model"
)

// FixedTime is the instant returned by FixedClock.
var FixedTime = time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)

// FixedClock always returns FixedTime.
func FixedClock() time.Time { return FixedTime }

// SampleAudio returns n deterministic bytes.
func SampleAudio(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

// TestTranslations are inserted oldest first; GetAll returns them reversed.
var TestTranslations = []model.NewTranslation{
	{
		Text:      "Hello, this is a short audio translation.",
		AudioData: SampleAudio(1000),
		MimeType:  "audio/webm;codecs=opus",
		Timestamp: "2024-05-01T09:00:00.000Z",
		Duration:  3.4,
	},
	{
		Text:      "It's a note with 'quotes' that SQL export must escape.",
		AudioData: SampleAudio(3000),
		MimeType:  "audio/ogg",
		Timestamp: "2024-05-02T09:00:00.000Z",
		Duration:  130,
	},
	{
		Text:      "Text-only record with unknown duration.",
		Timestamp: "2024-05-03T09:00:00.000Z",
		Duration:  0,
	},
}
