package mock

import (
	"context"
	"math/rand/v2"
	"time"
)

// Canned replies, chosen solely by payload size.
const (
	ShortReply  = "Hello, this is a short audio translation."
	MediumReply = "This is a medium length audio translation. The system has successfully converted your speech to text."
	LongReply   = "This is a longer audio translation. The advanced speech recognition system has processed your audio file and converted it into readable text format. This demonstrates the capability of the translation service to handle various audio lengths and complexities."
)

// Size thresholds in bytes.
const (
	ShortThreshold  = 2000
	MediumThreshold = 5000
)

// Default artificial latency window.
const (
	DefaultMinDelay = 2 * time.Second
	DefaultMaxDelay = 5 * time.Second
)

// Translator is a deterministic stand-in for a real transcription backend.
// It never fails except when the context is cancelled during the artificial delay.
type Translator struct {
	minDelay time.Duration
	maxDelay time.Duration
}

// NewTranslator creates a mock translator sleeping uniformly within [minDelay, maxDelay].
// Zero values disable the delay.
func NewTranslator(minDelay, maxDelay time.Duration) *Translator {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &Translator{minDelay: minDelay, maxDelay: maxDelay}
}

// NewDefaultTranslator uses the 2-5 second window.
func NewDefaultTranslator() *Translator {
	return NewTranslator(DefaultMinDelay, DefaultMaxDelay)
}

// Name implements api.Named
func (t *Translator) Name() string { return "mock" }

// Translate returns one of three canned replies based on len(audio).
func (t *Translator) Translate(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if d := t.delay(); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	return Reply(len(audio)), nil
}

// Reply maps a payload size to its canned reply.
func Reply(byteLength int) string {
	switch {
	case byteLength < ShortThreshold:
		return ShortReply
	case byteLength < MediumThreshold:
		return MediumReply
	default:
		return LongReply
	}
}

func (t *Translator) delay() time.Duration {
	span := t.maxDelay - t.minDelay
	if span <= 0 {
		return t.minDelay
	}
	return t.minDelay + rand.N(span)
}
