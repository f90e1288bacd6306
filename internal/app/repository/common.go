package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"voice-notes/internal/app/model"
)

// Dialect names accepted by NewCommonDB.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

const selectColumns = "id, timestamp, text, audio_data, mime_type, duration"

// CommonDB provides shared database functionality
type CommonDB struct {
	db           *sql.DB
	driverName   string
	placeholders PlaceholderFunc
}

// PlaceholderFunc generates parameter placeholders for different SQL dialects
type PlaceholderFunc func(n int) string

// NewCommonDB creates a new CommonDB instance
func NewCommonDB(db *sql.DB, driverName string) *CommonDB {
	var placeholders PlaceholderFunc

	switch driverName {
	case DialectPostgres:
		placeholders = func(n int) string { return fmt.Sprintf("$%d", n) }
	default:
		placeholders = func(n int) string { return "?" }
	}

	return &CommonDB{
		db:           db,
		driverName:   driverName,
		placeholders: placeholders,
	}
}

func (c *CommonDB) params(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = c.placeholders(i + 1)
	}
	return strings.Join(ps, ", ")
}

// Insert stores a record and returns its new id
func (c *CommonDB) Insert(ctx context.Context, rec *model.TranslationRecord) (int64, error) {
	query := fmt.Sprintf(
		"INSERT INTO translations (timestamp, text, audio_data, mime_type, duration) VALUES (%s)",
		c.params(5),
	)
	args := []any{rec.Timestamp, rec.Text, nullableBlob(rec.AudioData), rec.MimeType, rec.Duration}

	if c.driverName == DialectPostgres {
		var id int64
		if err := c.db.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert failed: %w", err)
		}
		return id, nil
	}

	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert failed: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert failed: %w", err)
	}
	return id, nil
}

// FindAll retrieves all records, newest first
func (c *CommonDB) FindAll(ctx context.Context) ([]model.TranslationRecord, error) {
	query := "SELECT " + selectColumns + " FROM translations ORDER BY timestamp DESC, id DESC"

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	records := make([]model.TranslationRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return records, nil
}

// FindByID retrieves a single record
func (c *CommonDB) FindByID(ctx context.Context, id int64) (*model.TranslationRecord, error) {
	query := fmt.Sprintf(
		"SELECT "+selectColumns+" FROM translations WHERE id = %s",
		c.placeholders(1),
	)

	rec, err := scanRecord(c.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateText replaces text and timestamp of a record
func (c *CommonDB) UpdateText(ctx context.Context, id int64, text, timestamp string) (bool, error) {
	query := fmt.Sprintf(
		"UPDATE translations SET text = %s, timestamp = %s WHERE id = %s",
		c.placeholders(1), c.placeholders(2), c.placeholders(3),
	)

	res, err := c.db.ExecContext(ctx, query, text, timestamp, id)
	if err != nil {
		return false, fmt.Errorf("update failed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update failed: %w", err)
	}
	return n > 0, nil
}

// Delete removes a record if present
func (c *CommonDB) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM translations WHERE id = %s", c.placeholders(1))

	if _, err := c.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

// DeleteAll removes every record
func (c *CommonDB) DeleteAll(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM translations"); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

// Count returns the number of stored records
func (c *CommonDB) Count(ctx context.Context) (int, error) {
	var count int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM translations").Scan(&count); err != nil {
		return 0, fmt.Errorf("query failed: %w", err)
	}
	return count, nil
}

// Close closes the database connection
func (c *CommonDB) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// DB returns the underlying database connection
func (c *CommonDB) DB() *sql.DB {
	return c.db
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*model.TranslationRecord, error) {
	var rec model.TranslationRecord
	var audio []byte
	if err := row.Scan(&rec.ID, &rec.Timestamp, &rec.Text, &audio, &rec.MimeType, &rec.Duration); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	if len(audio) > 0 {
		rec.AudioData = audio
	}
	return &rec, nil
}

func nullableBlob(data []byte) any {
	if len(data) == 0 {
		return nil
	}
	return data
}
