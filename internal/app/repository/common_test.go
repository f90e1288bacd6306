package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-notes/internal/app/model"
)

var recordColumns = []string{"id", "timestamp", "text", "audio_data", "mime_type", "duration"}

func newMockCommonDB(t *testing.T, dialect string) (*CommonDB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCommonDB(db, dialect), mock
}

func TestCommonDB_Placeholders(t *testing.T) {
	sqliteDB := NewCommonDB(nil, DialectSQLite)
	pgDB := NewCommonDB(nil, DialectPostgres)

	assert.Equal(t, "?, ?, ?", sqliteDB.params(3))
	assert.Equal(t, "$1, $2, $3", pgDB.params(3))
}

func TestCommonDB_Insert_SQLite(t *testing.T) {
	c, mock := newMockCommonDB(t, DialectSQLite)
	rec := &model.TranslationRecord{
		Timestamp: "2024-05-01T10:00:00.000Z",
		Text:      "hello",
		AudioData: []byte{1, 2},
		MimeType:  "audio/webm",
		Duration:  3.4,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO translations (timestamp, text, audio_data, mime_type, duration) VALUES (?, ?, ?, ?, ?)")).
		WithArgs(rec.Timestamp, rec.Text, rec.AudioData, rec.MimeType, rec.Duration).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := c.Insert(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommonDB_Insert_PostgresReturning(t *testing.T) {
	c, mock := newMockCommonDB(t, DialectPostgres)
	rec := &model.TranslationRecord{Timestamp: "2024-05-01T10:00:00.000Z", Text: "no audio"}

	mock.ExpectQuery(regexp.QuoteMeta("VALUES ($1, $2, $3, $4, $5) RETURNING id")).
		WithArgs(rec.Timestamp, rec.Text, nil, "", 0.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	id, err := c.Insert(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommonDB_Insert_Error(t *testing.T) {
	c, mock := newMockCommonDB(t, DialectSQLite)
	mock.ExpectExec("INSERT INTO translations").WillReturnError(errors.New("disk full"))

	_, err := c.Insert(context.Background(), &model.TranslationRecord{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert failed: disk full")
}

func TestCommonDB_FindAll(t *testing.T) {
	c, mock := newMockCommonDB(t, DialectPostgres)

	rows := sqlmock.NewRows(recordColumns).
		AddRow(2, "2024-05-02T10:00:00.000Z", "second", []byte{9}, "audio/ogg", 130.0).
		AddRow(1, "2024-05-01T10:00:00.000Z", "first", nil, "", 0.0)
	mock.ExpectQuery(regexp.QuoteMeta("FROM translations ORDER BY timestamp DESC, id DESC")).WillReturnRows(rows)

	records, err := c.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(2), records[0].ID)
	assert.Equal(t, []byte{9}, records[0].AudioData)
	assert.Equal(t, 130.0, records[0].Duration)
	assert.Nil(t, records[1].AudioData)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommonDB_FindAll_Empty(t *testing.T) {
	c, mock := newMockCommonDB(t, DialectSQLite)
	mock.ExpectQuery("SELECT (.+) FROM translations").WillReturnRows(sqlmock.NewRows(recordColumns))

	records, err := c.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCommonDB_FindByID(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantNil   bool
		wantError bool
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM translations WHERE id = $1")).
					WithArgs(int64(5)).
					WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(5, "2024-05-01T10:00:00.000Z", "x", nil, "", 1.5))
			},
		},
		{
			name: "absent",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM translations WHERE id").
					WithArgs(int64(5)).
					WillReturnRows(sqlmock.NewRows(recordColumns))
			},
			wantNil: true,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM translations WHERE id").WillReturnError(errors.New("conn reset"))
			},
			wantNil:   true,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mock := newMockCommonDB(t, DialectPostgres)
			tt.setup(mock)

			rec, err := c.FindByID(context.Background(), 5)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, rec)
			} else {
				require.NotNil(t, rec)
				assert.Equal(t, int64(5), rec.ID)
				assert.Equal(t, 1.5, rec.Duration)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCommonDB_UpdateText(t *testing.T) {
	c, mock := newMockCommonDB(t, DialectSQLite)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE translations SET text = ?, timestamp = ? WHERE id = ?")).
		WithArgs("new", "2024-06-01T00:00:00.000Z", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE translations").
		WithArgs("new", "2024-06-01T00:00:00.000Z", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := c.UpdateText(context.Background(), 3, "new", "2024-06-01T00:00:00.000Z")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.UpdateText(context.Background(), 4, "new", "2024-06-01T00:00:00.000Z")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommonDB_DeleteAndCount(t *testing.T) {
	c, mock := newMockCommonDB(t, DialectPostgres)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM translations WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM translations")).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM translations")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	require.NoError(t, c.Delete(context.Background(), 9), "deleting an absent id is not an error")
	require.NoError(t, c.DeleteAll(context.Background()))
	n, err := c.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommonDB_Close(t *testing.T) {
	c, mock := newMockCommonDB(t, DialectSQLite)
	mock.ExpectClose()

	assert.NoError(t, c.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
