package services

import (
	"voice-notes/internal/api/errors"
	"voice-notes/internal/api/v1/dto"
	"voice-notes/internal/app/codec"
	"voice-notes/internal/app/store"
)

type audioService struct {
	store *store.Store
}

// NewAudioService serves and releases playback handles issued by st.
func NewAudioService(st *store.Store) AudioService {
	return &audioService{store: st}
}

func (s *audioService) ResolveAudio(handleID string) (*dto.AudioFile, error) {
	blob, ok := s.store.Resolve(codec.ParseHandle(handleID))
	if !ok {
		return nil, errors.NewNotFoundError("Audio handle")
	}
	return &dto.AudioFile{RecordID: blob.RecordID, MimeType: blob.MimeType, Data: blob.Data}, nil
}

func (s *audioService) ReleaseAudio(handleID string) error {
	if !s.store.Release(codec.ParseHandle(handleID)) {
		return errors.NewNotFoundError("Audio handle")
	}
	return nil
}
