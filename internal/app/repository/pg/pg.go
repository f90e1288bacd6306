package pg

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"voice-notes/internal/app/repository"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS translations (
	id         BIGSERIAL PRIMARY KEY,
	timestamp  TEXT             NOT NULL,
	text       TEXT             NOT NULL DEFAULT '',
	audio_data BYTEA,
	mime_type  TEXT             NOT NULL DEFAULT '',
	duration   DOUBLE PRECISION NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_translations_timestamp ON translations (timestamp);
`

// PostgresDB is the PostgreSQL-backed TranslationDAO.
type PostgresDB struct {
	*repository.CommonDB
	db *sql.DB
}

// NewPostgresDB opens a connection pool. It does not contact the server;
// call EnsureSchema before first use.
func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open(repository.DialectPostgres, connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newPostgresDB(db), nil
}

func newPostgresDB(db *sql.DB) *PostgresDB {
	return &PostgresDB{
		CommonDB: repository.NewCommonDB(db, repository.DialectPostgres),
		db:       db,
	}
}

// EnsureSchema creates the translations table and index when missing.
func (p *PostgresDB) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}
