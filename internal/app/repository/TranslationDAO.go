package repository

import (
	"context"

	"voice-notes/internal/app/model"
)

// TranslationDAO persists translation records. Implementations are safe for
// concurrent use.
type TranslationDAO interface {
	Close() error

	// Insert stores rec under a fresh id and returns it. rec.ID is ignored.
	Insert(ctx context.Context, rec *model.TranslationRecord) (int64, error)

	// FindAll returns every record, newest timestamp first, ties broken by higher id.
	FindAll(ctx context.Context) ([]model.TranslationRecord, error)

	// FindByID returns nil, nil when no record has the id.
	FindByID(ctx context.Context, id int64) (*model.TranslationRecord, error)

	// UpdateText replaces text and timestamp. It reports whether the record existed.
	UpdateText(ctx context.Context, id int64, text, timestamp string) (bool, error)

	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id int64) error

	DeleteAll(ctx context.Context) error

	Count(ctx context.Context) (int, error)
}
