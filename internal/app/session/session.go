// Package session orchestrates capture, transcription and write-through for
// one client, keeping an observable State driven by Reduce.
package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"voice-notes/internal/app/api"
	"voice-notes/internal/app/codec"
	apperrors "voice-notes/internal/app/errors"
	"voice-notes/internal/app/model"
)

// User-facing messages.
const (
	MsgTranslationFailed  = "Translation failed"
	MsgReprocessingFailed = "Reprocessing failed"
	MsgLoadFailed         = "Failed to load translations"
	MsgDeleteFailed       = "Failed to delete translation"
)

// ErrNoAudio is returned when reprocessing a text-only record.
var ErrNoAudio = apperrors.New("audio data not found")

// Store is the part of the record store a session writes through.
type Store interface {
	Add(ctx context.Context, in model.NewTranslation) (int64, error)
	GetAll(ctx context.Context) ([]model.TranslationRecord, error)
	GetByID(ctx context.Context, id int64) (*model.TranslationRecord, error)
	Update(ctx context.Context, id int64, patch model.TranslationPatch) error
	Delete(ctx context.Context, id int64) error
	Release(h codec.Handle) bool
}

// Session owns the playback handles of the records in its state and releases
// them whenever those records leave the state.
type Session struct {
	client api.TranslationClient
	store  Store
	logger *zap.Logger
	now    func() time.Time

	mu    sync.Mutex
	state State
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for session actions. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now for capture and reprocess timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a session with an empty state.
func New(client api.TranslationClient, store Store, opts ...Option) *Session {
	s := &Session{
		client: client,
		store:  store,
		logger: zap.NewNop(),
		now:    time.Now,
		state:  State{Translations: []model.TranslationRecord{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.state
	snap.Translations = cloneRecords(s.state.Translations)
	return snap
}

// Dispatch applies a to the state.
func (s *Session) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatchLocked(a)
}

func (s *Session) dispatchLocked(a Action) State {
	prev := s.state
	s.state = Reduce(s.state, a)
	s.releaseDropped(prev, s.state)
	s.logger.Debug("session action", zap.Stringer("action", a.Type))
	return s.state
}

// Load replaces the state's translations with the store's current listing.
func (s *Session) Load(ctx context.Context) error {
	records, err := s.store.GetAll(ctx)
	if err != nil {
		s.fail(MsgLoadFailed, err)
		return err
	}
	s.Dispatch(Action{Type: SetTranslations, Translations: records})
	return nil
}

// Capture transcribes audio, stores the result and prepends it to the state.
func (s *Session) Capture(ctx context.Context, audio []byte, mimeType string, duration float64) (*model.TranslationRecord, error) {
	s.begin()
	defer s.Dispatch(Action{Type: SetTranslating, Flag: false})

	if mimeType == "" && len(audio) > 0 {
		mimeType = codec.DetectMimeType(audio)
	}

	text, err := s.client.Translate(ctx, audio, mimeType)
	if err != nil {
		s.fail(apperrors.UserMessage(MsgTranslationFailed, err), err)
		return nil, err
	}

	id, err := s.store.Add(ctx, model.NewTranslation{
		Text:      text,
		AudioData: audio,
		MimeType:  mimeType,
		Timestamp: model.FormatTimestamp(s.now()),
		Duration:  duration,
	})
	if err != nil {
		s.fail(apperrors.UserMessage(MsgTranslationFailed, err), err)
		return nil, err
	}

	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.fail(apperrors.UserMessage(MsgTranslationFailed, err), err)
		return nil, err
	}

	s.Dispatch(Action{Type: AddTranslation, Translation: rec})
	s.logger.Info("translation captured",
		zap.Int64("id", id),
		zap.String("provider", api.ProviderName(s.client)),
		zap.Int("audio_bytes", len(audio)))
	return rec, nil
}

// Reprocess re-runs transcription on a stored record's audio and replaces its
// text and timestamp.
func (s *Session) Reprocess(ctx context.Context, id int64) (*model.TranslationRecord, error) {
	s.begin()
	defer s.Dispatch(Action{Type: SetTranslating, Flag: false})

	current, ok := s.find(id)
	if !ok {
		err := &apperrors.NotFoundError{ID: id}
		s.fail(apperrors.UserMessage(MsgReprocessingFailed, err), err)
		return nil, err
	}

	stored, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.fail(apperrors.UserMessage(MsgReprocessingFailed, err), err)
		return nil, err
	}
	if stored.AudioURL != "" {
		// state keeps its own handle for this record
		s.store.Release(codec.Handle(stored.AudioURL))
	}
	if !stored.HasAudio() {
		s.fail(apperrors.UserMessage(MsgReprocessingFailed, ErrNoAudio), ErrNoAudio)
		return nil, ErrNoAudio
	}

	text, err := s.client.Translate(ctx, stored.AudioData, stored.MimeType)
	if err != nil {
		s.fail(apperrors.UserMessage(MsgReprocessingFailed, err), err)
		return nil, err
	}

	patch := model.TranslationPatch{Text: text, Timestamp: model.FormatTimestamp(s.now())}
	if err := s.store.Update(ctx, id, patch); err != nil {
		s.fail(apperrors.UserMessage(MsgReprocessingFailed, err), err)
		return nil, err
	}

	current.Text = patch.Text
	current.Timestamp = patch.Timestamp
	s.Dispatch(Action{Type: UpdateTranslation, Translation: &current})
	s.logger.Info("translation reprocessed", zap.Int64("id", id))
	return &current, nil
}

// Delete removes a record from the store and the state.
func (s *Session) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.fail(MsgDeleteFailed, err)
		return err
	}
	s.Dispatch(Action{Type: RemoveTranslation, ID: id})
	return nil
}

// SetRecording flips the recording flag.
func (s *Session) SetRecording(recording bool) {
	s.Dispatch(Action{Type: SetRecording, Flag: recording})
}

// ClearError resets the error message.
func (s *Session) ClearError() {
	s.Dispatch(Action{Type: ClearError})
}

// Close releases every handle held by the state and empties it.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.state
	s.state = State{Translations: []model.TranslationRecord{}}
	s.releaseDropped(prev, s.state)
}

func (s *Session) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatchLocked(Action{Type: SetTranslating, Flag: true})
	s.dispatchLocked(Action{Type: ClearError})
}

func (s *Session) find(id int64) (model.TranslationRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.state.Translations {
		if r.ID == id {
			return r, true
		}
	}
	return model.TranslationRecord{}, false
}

func (s *Session) fail(message string, err error) {
	s.logger.Warn("session action failed", zap.String("message", message), zap.Error(err))
	s.Dispatch(Action{Type: SetError, Message: message})
}

func (s *Session) releaseDropped(prev, next State) {
	keep := make(map[string]struct{}, len(next.Translations)+1)
	for _, r := range next.Translations {
		keep[r.AudioURL] = struct{}{}
	}
	if next.LastTranslation != nil {
		keep[next.LastTranslation.AudioURL] = struct{}{}
	}

	drop := func(url string) {
		if url == "" {
			return
		}
		if _, ok := keep[url]; ok {
			return
		}
		s.store.Release(codec.Handle(url))
		keep[url] = struct{}{}
	}
	for _, r := range prev.Translations {
		drop(r.AudioURL)
	}
	if prev.LastTranslation != nil {
		drop(prev.LastTranslation.AudioURL)
	}
}
