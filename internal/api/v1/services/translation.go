package services

import (
	"context"
	"time"

	"voice-notes/internal/api/v1/dto"
	"voice-notes/internal/app/api"
	"voice-notes/internal/app/codec"
	apperrors "voice-notes/internal/app/errors"
	"voice-notes/internal/app/model"
	"voice-notes/internal/app/store"
)

type translationService struct {
	store  *store.Store
	client api.TranslationClient
	now    func() time.Time
}

// NewTranslationService creates a new translation service
func NewTranslationService(st *store.Store, client api.TranslationClient) TranslationService {
	return &translationService{store: st, client: client, now: time.Now}
}

func (s *translationService) ListTranslations(ctx context.Context) (*dto.ListTranslationsResponse, error) {
	records, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromRecords(records), nil
}

func (s *translationService) GetTranslation(ctx context.Context, id int64) (*dto.TranslationResponse, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromRecord(rec)
	return &resp, nil
}

func (s *translationService) CreateTranslation(ctx context.Context, req *dto.CreateTranslationRequest) (*dto.TranslationResponse, error) {
	var audio []byte
	mimeType := req.MimeType
	if req.Audio != "" {
		data, err := codec.FromBase64(req.Audio)
		if err != nil {
			return nil, err
		}
		audio = data
		if mimeType == "" {
			mimeType = codec.MimeTypeFromDataURL(req.Audio)
		}
		if mimeType == "" {
			mimeType = codec.DetectMimeType(audio)
		}
	}

	text := req.Text
	if text == "" {
		translated, err := s.client.Translate(ctx, audio, mimeType)
		if err != nil {
			return nil, err
		}
		text = translated
	}

	return s.add(ctx, model.NewTranslation{
		Text:      text,
		AudioData: audio,
		MimeType:  mimeType,
		Timestamp: req.Timestamp,
		Duration:  req.Duration,
	})
}

func (s *translationService) UploadTranslation(ctx context.Context, audio []byte, mimeType string, duration float64) (*dto.TranslationResponse, error) {
	if len(audio) == 0 {
		return nil, apperrors.RequiredField("file")
	}
	if mimeType == "" {
		mimeType = codec.DetectMimeType(audio)
	}

	text, err := s.client.Translate(ctx, audio, mimeType)
	if err != nil {
		return nil, err
	}

	return s.add(ctx, model.NewTranslation{
		Text:      text,
		AudioData: audio,
		MimeType:  mimeType,
		Duration:  duration,
	})
}

func (s *translationService) UpdateTranslation(ctx context.Context, id int64, req *dto.UpdateTranslationRequest) (*dto.TranslationResponse, error) {
	patch := model.TranslationPatch{Text: req.Text, Timestamp: model.FormatTimestamp(s.now())}
	if err := s.store.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.GetTranslation(ctx, id)
}

func (s *translationService) ReprocessTranslation(ctx context.Context, id int64) (*dto.TranslationResponse, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.release(rec)
	if !rec.HasAudio() {
		return nil, apperrors.InvalidField("audio", "record has no audio to reprocess")
	}

	text, err := s.client.Translate(ctx, rec.AudioData, rec.MimeType)
	if err != nil {
		return nil, err
	}
	return s.UpdateTranslation(ctx, id, &dto.UpdateTranslationRequest{Text: text})
}

func (s *translationService) DeleteTranslation(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (s *translationService) ClearTranslations(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *translationService) GetBase64(ctx context.Context, id int64) (*dto.Base64Response, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.release(rec)
	if !rec.HasAudio() {
		return nil, apperrors.InvalidField("audio", "record has no audio")
	}

	enc := codec.ToBase64(rec.AudioData, rec.MimeType)
	return &dto.Base64Response{
		ID:        rec.ID,
		MimeType:  rec.MimeType,
		DataURL:   enc.DataURL,
		Body:      enc.Body,
		Size:      len(rec.AudioData),
		SizeLabel: codec.SizeLabel(int64(len(rec.AudioData))),
	}, nil
}

func (s *translationService) add(ctx context.Context, in model.NewTranslation) (*dto.TranslationResponse, error) {
	id, err := s.store.Add(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.GetTranslation(ctx, id)
}

func (s *translationService) release(rec *model.TranslationRecord) {
	if rec.AudioURL != "" {
		s.store.Release(codec.Handle(rec.AudioURL))
	}
}
