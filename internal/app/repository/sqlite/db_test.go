package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-notes/internal/app/model"
	"voice-notes/internal/app/repository"
)

// TestSQLiteDAO_Interface verifies SQLiteDB implements TranslationDAO interface
func TestSQLiteDAO_Interface(t *testing.T) {
	var _ repository.TranslationDAO = (*SQLiteDB)(nil)
}

func newTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "nested", "translations.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewSQLiteDB_CreatesDirectoryAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "test.db")
	db, err := NewSQLiteDB(path)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, path, db.Path())
	assert.NoError(t, db.DB().Ping())

	// reopening keeps existing rows
	_, err = db.Insert(context.Background(), &model.TranslationRecord{Timestamp: "2024-01-01T00:00:00.000Z", Text: "kept"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := NewSQLiteDB(path)
	require.NoError(t, err)
	defer reopened.Close()
	n, err := reopened.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSQLiteDB_InMemory(t *testing.T) {
	db, err := NewSQLiteDB(MemoryPath)
	require.NoError(t, err)
	defer db.Close()

	id, err := db.Insert(context.Background(), &model.TranslationRecord{Timestamp: "2024-01-01T00:00:00.000Z"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestSQLiteDB_CRUD(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	audio := []byte{0x1a, 0x45, 0xdf, 0xa3}
	id, err := db.Insert(ctx, &model.TranslationRecord{
		ID:        999,
		Timestamp: "2024-05-01T10:00:00.000Z",
		Text:      "it's a test",
		AudioData: audio,
		MimeType:  "audio/webm",
		Duration:  3.4,
	})
	require.NoError(t, err)
	assert.NotEqual(t, int64(999), id, "caller supplied id is ignored")

	rec, err := db.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "it's a test", rec.Text)
	assert.Equal(t, audio, rec.AudioData)
	assert.Equal(t, "audio/webm", rec.MimeType)
	assert.Equal(t, 3.4, rec.Duration)

	ok, err := db.UpdateText(ctx, id, "updated", "2024-05-02T10:00:00.000Z")
	require.NoError(t, err)
	assert.True(t, ok)

	rec, err = db.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "updated", rec.Text)
	assert.Equal(t, "2024-05-02T10:00:00.000Z", rec.Timestamp)
	assert.Equal(t, audio, rec.AudioData, "audio is untouched by updates")

	ok, err = db.UpdateText(ctx, id+100, "nope", "2024-05-02T10:00:00.000Z")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.Delete(ctx, id))
	require.NoError(t, db.Delete(ctx, id), "second delete is a no-op")

	rec, err = db.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSQLiteDB_FindAllOrdering(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	timestamps := []string{
		"2024-05-01T10:00:00.000Z",
		"2024-05-03T10:00:00.000Z",
		"2024-05-02T10:00:00.000Z",
		"2024-05-03T10:00:00.000Z",
	}
	for _, ts := range timestamps {
		_, err := db.Insert(ctx, &model.TranslationRecord{Timestamp: ts, Text: ts})
		require.NoError(t, err)
	}

	records, err := db.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 4)

	ids := []int64{records[0].ID, records[1].ID, records[2].ID, records[3].ID}
	assert.Equal(t, []int64{4, 2, 3, 1}, ids)
}

func TestSQLiteDB_DeleteAllAndIDsNotReused(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	for i := 0; i < 3; i++ {
		_, err := db.Insert(ctx, &model.TranslationRecord{Timestamp: "2024-05-01T10:00:00.000Z"})
		require.NoError(t, err)
	}
	require.NoError(t, db.DeleteAll(ctx))

	n, err := db.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	records, err := db.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	id, err := db.Insert(ctx, &model.TranslationRecord{Timestamp: "2024-05-01T10:00:00.000Z"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

func TestSQLiteDB_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	var wg sync.WaitGroup
	ids := make(chan int64, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := db.Insert(ctx, &model.TranslationRecord{Timestamp: "2024-05-01T10:00:00.000Z"})
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, 20)
}

func TestSQLiteDB_OperationsFailAfterClose(t *testing.T) {
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = db.Count(context.Background())
	assert.Error(t, err)
}
