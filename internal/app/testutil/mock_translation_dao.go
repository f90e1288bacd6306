package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"voice-notes/internal/app/model"
)

// MockTranslationDAO is a testify mock of repository.TranslationDAO
type MockTranslationDAO struct {
	mock.Mock
}

func NewMockTranslationDAO(t *testing.T) *MockTranslationDAO {
	m := &MockTranslationDAO{}
	m.Test(t)
	return m
}

func (m *MockTranslationDAO) Close() error {
	return m.Called().Error(0)
}

func (m *MockTranslationDAO) Insert(ctx context.Context, rec *model.TranslationRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTranslationDAO) FindAll(ctx context.Context) ([]model.TranslationRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TranslationRecord), args.Error(1)
}

func (m *MockTranslationDAO) FindByID(ctx context.Context, id int64) (*model.TranslationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TranslationRecord), args.Error(1)
}

func (m *MockTranslationDAO) UpdateText(ctx context.Context, id int64, text, timestamp string) (bool, error) {
	args := m.Called(ctx, id, text, timestamp)
	return args.Bool(0), args.Error(1)
}

func (m *MockTranslationDAO) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTranslationDAO) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTranslationDAO) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
