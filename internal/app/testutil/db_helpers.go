package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"voice-notes/internal/app/model"
	"voice-notes/internal/app/repository"
	"voice-notes/internal/app/repository/sqlite"
)

// SetupTestSQLite creates a SQLite-backed DAO in a per-test temp directory.
func SetupTestSQLite(t *testing.T) *sqlite.SQLiteDB {
	t.Helper()

	dao, err := sqlite.NewSQLiteDB(filepath.Join(t.TempDir(), "translations.db"))
	if err != nil {
		t.Fatalf("Failed to create SQLite test database: %v", err)
	}

	t.Cleanup(func() {
		if err := dao.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})

	return dao
}

// WithTestDAO runs fn against a fresh database.
func WithTestDAO(t *testing.T, fn func(t *testing.T, dao *sqlite.SQLiteDB)) {
	t.Helper()
	fn(t, SetupTestSQLite(t))
}

// SeedTranslations inserts the fixtures in order and returns their ids.
func SeedTranslations(t *testing.T, dao repository.TranslationDAO, items []model.NewTranslation) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(items))
	for i, item := range items {
		id, err := dao.Insert(context.Background(), &model.TranslationRecord{
			Timestamp: item.Timestamp,
			Text:      item.Text,
			AudioData: item.AudioData,
			MimeType:  item.MimeType,
			Duration:  item.Duration,
		})
		if err != nil {
			t.Fatalf("Failed to seed translation %d: %v", i, err)
		}
		ids = append(ids, id)
	}
	return ids
}
