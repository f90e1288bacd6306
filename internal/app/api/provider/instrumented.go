package provider

import (
	"context"
	"time"

	"go.uber.org/zap"

	"voice-notes/internal/app/api"
	apperrors "voice-notes/internal/app/errors"
	"voice-notes/internal/app/metrics"
)

// Instrumented wraps a TranslationClient with a per-call timeout, latency
// metrics and logging. Failures from the inner client that are not already
// typed are wrapped in a TranscriptionError.
type Instrumented struct {
	inner   api.TranslationClient
	name    string
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewInstrumented wraps inner. A zero timeout leaves the caller's deadline in charge.
func NewInstrumented(inner api.TranslationClient, timeout time.Duration, m *metrics.Metrics, logger *zap.Logger) *Instrumented {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Instrumented{
		inner:   inner,
		name:    api.ProviderName(inner),
		timeout: timeout,
		metrics: m,
		logger:  logger,
	}
}

// Name implements api.Named
func (i *Instrumented) Name() string { return i.name }

// Translate implements api.TranslationClient
func (i *Instrumented) Translate(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	started := time.Now()
	text, err := i.inner.Translate(ctx, audio, mimeType)
	i.metrics.ObserveTranslate(i.name, started, err)

	if err != nil {
		if !apperrors.IsTranscription(err) {
			err = apperrors.NewTranscriptionError(i.name, err)
		}
		i.logger.Warn("translation failed",
			zap.String("provider", i.name),
			zap.Int("bytes", len(audio)),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err))
		return "", err
	}

	i.logger.Debug("translation finished",
		zap.String("provider", i.name),
		zap.Int("bytes", len(audio)),
		zap.Int("chars", len(text)),
		zap.Duration("elapsed", time.Since(started)))
	return text, nil
}
