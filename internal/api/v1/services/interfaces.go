package services

import (
	"context"

	"voice-notes/internal/api/v1/dto"
)

// TranslationService defines the interface for translation record operations
type TranslationService interface {
	ListTranslations(ctx context.Context) (*dto.ListTranslationsResponse, error)
	GetTranslation(ctx context.Context, id int64) (*dto.TranslationResponse, error)
	CreateTranslation(ctx context.Context, req *dto.CreateTranslationRequest) (*dto.TranslationResponse, error)
	UploadTranslation(ctx context.Context, audio []byte, mimeType string, duration float64) (*dto.TranslationResponse, error)
	UpdateTranslation(ctx context.Context, id int64, req *dto.UpdateTranslationRequest) (*dto.TranslationResponse, error)
	ReprocessTranslation(ctx context.Context, id int64) (*dto.TranslationResponse, error)
	DeleteTranslation(ctx context.Context, id int64) error
	ClearTranslations(ctx context.Context) error
	GetBase64(ctx context.Context, id int64) (*dto.Base64Response, error)
}

// AudioService defines the interface for playback handle operations
type AudioService interface {
	ResolveAudio(handleID string) (*dto.AudioFile, error)
	ReleaseAudio(handleID string) error
}

// ExportService defines the interface for export operations
type ExportService interface {
	Export(ctx context.Context, query dto.ExportQuery) (*dto.ExportFile, error)
}
