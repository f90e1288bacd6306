package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockTranslationClient is a testify mock of api.TranslationClient
type MockTranslationClient struct {
	mock.Mock
}

func NewMockTranslationClient(t *testing.T) *MockTranslationClient {
	m := &MockTranslationClient{}
	m.Test(t)
	return m
}

func (m *MockTranslationClient) Name() string { return "mock-client" }

func (m *MockTranslationClient) Translate(ctx context.Context, audio []byte, mimeType string) (string, error) {
	args := m.Called(ctx, audio, mimeType)
	return args.String(0), args.Error(1)
}
