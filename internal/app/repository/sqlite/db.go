package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"voice-notes/internal/app/repository"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const createTableSQL = `
CREATE TABLE IF NOT EXISTS translations (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp  TEXT    NOT NULL,
	text       TEXT    NOT NULL DEFAULT '',
	audio_data BLOB,
	mime_type  TEXT    NOT NULL DEFAULT '',
	duration   REAL    NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_translations_timestamp ON translations (timestamp);
`

// SQLiteDB is the file-backed TranslationDAO.
type SQLiteDB struct {
	*repository.CommonDB
	path string
}

// NewSQLiteDB opens (creating if needed) the database at dbFilePath and ensures the schema.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	dsn := dbFilePath
	if dbFilePath != MemoryPath {
		if dir := filepath.Dir(dbFilePath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dsn = fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", dbFilePath)
	}

	db, err := sql.Open(repository.DialectSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single connection serialises writers and keeps :memory: databases alive
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &SQLiteDB{
		CommonDB: repository.NewCommonDB(db, repository.DialectSQLite),
		path:     dbFilePath,
	}, nil
}

// Path returns the file the database was opened from.
func (sdb *SQLiteDB) Path() string {
	return sdb.path
}
