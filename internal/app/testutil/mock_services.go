package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"voice-notes/internal/api/v1/dto"
)

// MockServices contains all mock services for testing
type MockServices struct {
	TranslationService *MockTranslationService
	AudioService       *MockAudioService
	ExportService      *MockExportService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		TranslationService: NewMockTranslationService(t),
		AudioService:       NewMockAudioService(t),
		ExportService:      NewMockExportService(t),
	}
}

// MockTranslationService is a mock implementation of TranslationService
type MockTranslationService struct {
	mock.Mock
}

func NewMockTranslationService(t *testing.T) *MockTranslationService {
	m := &MockTranslationService{}
	m.Test(t)
	return m
}

func (m *MockTranslationService) ListTranslations(ctx context.Context) (*dto.ListTranslationsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTranslationsResponse), args.Error(1)
}

func (m *MockTranslationService) GetTranslation(ctx context.Context, id int64) (*dto.TranslationResponse, error) {
	args := m.Called(ctx, id)
	return translationResponse(args)
}

func (m *MockTranslationService) CreateTranslation(ctx context.Context, req *dto.CreateTranslationRequest) (*dto.TranslationResponse, error) {
	args := m.Called(ctx, req)
	return translationResponse(args)
}

func (m *MockTranslationService) UploadTranslation(ctx context.Context, audio []byte, mimeType string, duration float64) (*dto.TranslationResponse, error) {
	args := m.Called(ctx, audio, mimeType, duration)
	return translationResponse(args)
}

func (m *MockTranslationService) UpdateTranslation(ctx context.Context, id int64, req *dto.UpdateTranslationRequest) (*dto.TranslationResponse, error) {
	args := m.Called(ctx, id, req)
	return translationResponse(args)
}

func (m *MockTranslationService) ReprocessTranslation(ctx context.Context, id int64) (*dto.TranslationResponse, error) {
	args := m.Called(ctx, id)
	return translationResponse(args)
}

func (m *MockTranslationService) DeleteTranslation(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTranslationService) ClearTranslations(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTranslationService) GetBase64(ctx context.Context, id int64) (*dto.Base64Response, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Base64Response), args.Error(1)
}

func translationResponse(args mock.Arguments) (*dto.TranslationResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranslationResponse), args.Error(1)
}

// MockAudioService is a mock implementation of AudioService
type MockAudioService struct {
	mock.Mock
}

func NewMockAudioService(t *testing.T) *MockAudioService {
	m := &MockAudioService{}
	m.Test(t)
	return m
}

func (m *MockAudioService) ResolveAudio(handleID string) (*dto.AudioFile, error) {
	args := m.Called(handleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AudioFile), args.Error(1)
}

func (m *MockAudioService) ReleaseAudio(handleID string) error {
	args := m.Called(handleID)
	return args.Error(0)
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	mock.Mock
}

func NewMockExportService(t *testing.T) *MockExportService {
	m := &MockExportService{}
	m.Test(t)
	return m
}

func (m *MockExportService) Export(ctx context.Context, query dto.ExportQuery) (*dto.ExportFile, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExportFile), args.Error(1)
}
