// Package store is the translation record store: validated CRUD over a
// repository backend plus playback-handle bookkeeping and snapshot exports.
package store

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"voice-notes/internal/app/codec"
	apperrors "voice-notes/internal/app/errors"
	"voice-notes/internal/app/metrics"
	"voice-notes/internal/app/model"
	"voice-notes/internal/app/repository"
)

// Store operation names, used in StorageError.Op and metrics labels.
const (
	OpAdd     = "add"
	OpGetAll  = "get_all"
	OpGetByID = "get_by_id"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpClear   = "clear"
	OpCount   = "count"
)

// SQLScriptHeader opens every SQL export.
const SQLScriptHeader = "CREATE TABLE IF NOT EXISTS translations (id INTEGER PRIMARY KEY, timestamp TEXT, text TEXT, audio_url TEXT, duration REAL);\n\n"

// Store is safe for concurrent use; consistency comes from the backend.
type Store struct {
	dao     repository.TranslationDAO
	handles *codec.HandleRegistry
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics enables instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithClock replaces time.Now for default timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a store over dao. A nil registry gets a private one.
func New(dao repository.TranslationDAO, handles *codec.HandleRegistry, opts ...Option) *Store {
	if handles == nil {
		handles = codec.NewHandleRegistry()
	}
	s := &Store{
		dao:     dao,
		handles: handles,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates in, persists it and returns the assigned id.
func (s *Store) Add(ctx context.Context, in model.NewTranslation) (int64, error) {
	rec, err := s.prepare(in)
	if err != nil {
		return 0, err
	}

	id, err := s.dao.Insert(ctx, rec)
	s.observe(OpAdd, err)
	if err != nil {
		return 0, apperrors.NewStorageError(OpAdd, err)
	}

	s.logger.Debug("translation added", zap.Int64("id", id), zap.Int("audio_bytes", len(rec.AudioData)))
	return id, nil
}

func (s *Store) prepare(in model.NewTranslation) (*model.TranslationRecord, error) {
	if math.IsNaN(in.Duration) || math.IsInf(in.Duration, 0) || in.Duration < 0 {
		return nil, apperrors.InvalidField("duration", "must be a non-negative number of seconds")
	}

	ts, err := s.timestamp(in.Timestamp)
	if err != nil {
		return nil, err
	}

	rec := &model.TranslationRecord{
		Timestamp: ts,
		Text:      in.Text,
		Duration:  in.Duration,
	}
	if len(in.AudioData) > 0 {
		if strings.TrimSpace(in.MimeType) == "" {
			return nil, apperrors.RequiredField("mimeType")
		}
		rec.AudioData = in.AudioData
		rec.MimeType = in.MimeType
	}
	return rec, nil
}

func (s *Store) timestamp(raw string) (string, error) {
	if raw == "" {
		return model.FormatTimestamp(s.now()), nil
	}
	if _, err := model.ParseTimestamp(raw); err != nil {
		return "", apperrors.InvalidField("timestamp", err.Error())
	}
	return raw, nil
}

// GetAll returns every record newest first, each with a fresh playback handle
// when it carries audio. Handles issued by earlier calls stay valid.
func (s *Store) GetAll(ctx context.Context) ([]model.TranslationRecord, error) {
	records, err := s.dao.FindAll(ctx)
	s.observe(OpGetAll, err)
	if err != nil {
		return nil, apperrors.NewStorageError(OpGetAll, err)
	}
	model.SortNewestFirst(records)

	for i := range records {
		s.materialize(&records[i])
	}
	s.metrics.SetAudioHandles(s.handles.Len())
	return records, nil
}

// GetByID returns the record or a NotFoundError.
func (s *Store) GetByID(ctx context.Context, id int64) (*model.TranslationRecord, error) {
	rec, err := s.dao.FindByID(ctx, id)
	s.observe(OpGetByID, err)
	if err != nil {
		return nil, apperrors.NewStorageError(OpGetByID, err)
	}
	if rec == nil {
		return nil, &apperrors.NotFoundError{ID: id}
	}

	s.materialize(rec)
	s.metrics.SetAudioHandles(s.handles.Len())
	return rec, nil
}

// Update replaces text and timestamp. Audio is never touched.
func (s *Store) Update(ctx context.Context, id int64, patch model.TranslationPatch) error {
	ts, err := s.timestamp(patch.Timestamp)
	if err != nil {
		return err
	}

	ok, err := s.dao.UpdateText(ctx, id, patch.Text, ts)
	s.observe(OpUpdate, err)
	if err != nil {
		return apperrors.NewStorageError(OpUpdate, err)
	}
	if !ok {
		return &apperrors.NotFoundError{ID: id}
	}
	return nil
}

// Delete releases the record's handles and removes it. Unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, id int64) error {
	released := s.handles.ReleaseRecord(id)
	s.metrics.SetAudioHandles(s.handles.Len())

	err := s.dao.Delete(ctx, id)
	s.observe(OpDelete, err)
	if err != nil {
		return apperrors.NewStorageError(OpDelete, err)
	}

	s.logger.Debug("translation deleted", zap.Int64("id", id), zap.Int("handles_released", released))
	return nil
}

// Clear releases every handle and removes every record.
func (s *Store) Clear(ctx context.Context) error {
	released := s.handles.ReleaseAll()
	s.metrics.SetAudioHandles(0)

	err := s.dao.DeleteAll(ctx)
	s.observe(OpClear, err)
	if err != nil {
		return apperrors.NewStorageError(OpClear, err)
	}

	s.logger.Info("store cleared", zap.Int("handles_released", released))
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	n, err := s.dao.Count(ctx)
	s.observe(OpCount, err)
	if err != nil {
		return 0, apperrors.NewStorageError(OpCount, err)
	}
	return n, nil
}

// Release invalidates a handle obtained from GetAll or GetByID.
func (s *Store) Release(h codec.Handle) bool {
	ok := s.handles.Release(h)
	s.metrics.SetAudioHandles(s.handles.Len())
	return ok
}

// Resolve returns the payload behind a live handle.
func (s *Store) Resolve(h codec.Handle) (codec.Blob, bool) {
	return s.handles.Resolve(h)
}

// Snapshot returns GetAll's result together with a func releasing the
// handles that call issued. Callers rendering exports invoke it when done.
func (s *Store) Snapshot(ctx context.Context) ([]model.TranslationRecord, func(), error) {
	records, err := s.GetAll(ctx)
	if err != nil {
		return nil, func() {}, err
	}
	release := func() {
		for _, r := range records {
			if r.AudioURL != "" {
				s.handles.Release(codec.Handle(r.AudioURL))
			}
		}
		s.metrics.SetAudioHandles(s.handles.Len())
	}
	return records, release, nil
}

// ExportToJSON renders the whole store as an indented JSON array ("[]" when empty).
func (s *Store) ExportToJSON(ctx context.Context) (string, error) {
	records, release, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	defer release()
	return RenderJSON(records)
}

// ExportToSQLScript renders the whole store as a SQL script.
func (s *Store) ExportToSQLScript(ctx context.Context) (string, error) {
	records, release, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	defer release()
	return RenderSQLScript(records), nil
}

// RenderJSON formats records with two-space indentation.
func RenderJSON(records []model.TranslationRecord) (string, error) {
	if records == nil {
		records = []model.TranslationRecord{}
	}
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encode translations")
	}
	return string(out), nil
}

// RenderSQLScript emits the schema followed by one INSERT per record.
func RenderSQLScript(records []model.TranslationRecord) string {
	var b strings.Builder
	b.WriteString(SQLScriptHeader)
	for _, r := range records {
		b.WriteString("INSERT INTO translations (id, timestamp, text, audio_url, duration) VALUES (")
		b.WriteString(strconv.FormatInt(r.ID, 10))
		b.WriteString(", ")
		b.WriteString(sqlQuote(r.Timestamp))
		b.WriteString(", ")
		b.WriteString(sqlQuote(r.Text))
		b.WriteString(", ")
		b.WriteString(sqlQuote(r.AudioURL))
		b.WriteString(", ")
		b.WriteString(strconv.FormatFloat(r.Duration, 'f', -1, 64))
		b.WriteString(");\n")
	}
	return b.String()
}

func sqlQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (s *Store) materialize(rec *model.TranslationRecord) {
	if rec.HasAudio() {
		rec.AudioURL = string(s.handles.Materialize(rec.ID, rec.AudioData, rec.MimeType))
	}
}

func (s *Store) observe(op string, err error) {
	s.metrics.ObserveStoreOp(op, err)
	if err != nil {
		s.logger.Error("store operation failed", zap.String("op", op), zap.Error(err))
	}
}
