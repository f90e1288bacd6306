// Package export renders a full snapshot of the record store into
// downloadable documents.
package export

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	apperrors "voice-notes/internal/app/errors"
	"voice-notes/internal/app/metrics"
	"voice-notes/internal/app/model"
	"voice-notes/internal/app/store"
)

// Format names a rendering.
type Format string

const (
	FormatJSON        Format = "json"
	FormatSQL         Format = "sql"
	FormatMongoScript Format = "mongo-script"
	FormatCSV         Format = "csv"
	FormatXLSX        Format = "xlsx"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatJSON, FormatSQL, FormatMongoScript, FormatCSV, FormatXLSX}

var aliases = map[string]Format{
	"sqlite":  FormatSQL,
	"mongodb": FormatMongoScript,
	"mongo":   FormatMongoScript,
	"excel":   FormatXLSX,
}

// ParseFormat resolves a user-supplied format name, accepting a few aliases.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if f, ok := aliases[name]; ok {
		return f, nil
	}
	f := Format(name)
	if !lo.Contains(Formats, f) {
		return "", apperrors.InvalidField("format", "unsupported export format "+s)
	}
	return f, nil
}

// Default MongoDB target names.
const (
	DefaultMongoDatabase   = "audio_translations"
	DefaultMongoCollection = "translations"
)

// MongoTarget names the database and collection a mongo-script inserts into.
type MongoTarget struct {
	Database   string
	Collection string
}

// Request selects what to export.
type Request struct {
	Format Format
	Mongo  MongoTarget
}

// Result is a rendered document ready to be written or served.
type Result struct {
	Format      Format
	Filename    string
	ContentType string
	Content     []byte
}

// Source is the read side of the record store an export needs. Snapshot
// returns the records plus a func releasing any handles issued for them.
type Source interface {
	Snapshot(ctx context.Context) ([]model.TranslationRecord, func(), error)
}

// Service renders exports from a Source.
type Service struct {
	src     Source
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	mongo   MongoTarget
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for export events. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records per-format export outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock replaces time.Now for file naming.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMongoDefaults overrides the database/collection used when a request leaves them empty.
func WithMongoDefaults(target MongoTarget) Option {
	return func(s *Service) {
		if target.Database != "" {
			s.mongo.Database = target.Database
		}
		if target.Collection != "" {
			s.mongo.Collection = target.Collection
		}
	}
}

// NewService creates an export service over src.
func NewService(src Source, opts ...Option) *Service {
	s := &Service{
		src:    src,
		logger: zap.NewNop(),
		now:    time.Now,
		mongo:  MongoTarget{Database: DefaultMongoDatabase, Collection: DefaultMongoCollection},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Export renders req from a single snapshot. An empty snapshot yields an
// EmptyStoreError before any rendering.
func (s *Service) Export(ctx context.Context, req Request) (res *Result, err error) {
	defer func() { s.metrics.ObserveExport(string(req.Format), err) }()

	if !lo.Contains(Formats, req.Format) {
		return nil, apperrors.InvalidField("format", "unsupported export format "+string(req.Format))
	}

	target := s.mongoTarget(req.Mongo)
	if req.Format == FormatMongoScript {
		if err := validateMongoTarget(target); err != nil {
			return nil, err
		}
	}

	records, release, err := s.src.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	if len(records) == 0 {
		return nil, &apperrors.EmptyStoreError{}
	}

	content, err := render(req.Format, records, target)
	if err != nil {
		return nil, err
	}

	res = &Result{
		Format:      req.Format,
		Filename:    Filename(req.Format, s.now()),
		ContentType: ContentType(req.Format),
		Content:     content,
	}
	s.logger.Info("export rendered",
		zap.String("format", string(res.Format)),
		zap.String("filename", res.Filename),
		zap.Int("records", len(records)),
		zap.Int("bytes", len(res.Content)))
	return res, nil
}

func render(format Format, records []model.TranslationRecord, target MongoTarget) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := store.RenderJSON(records)
		return []byte(out), err
	case FormatSQL:
		return []byte(store.RenderSQLScript(records)), nil
	case FormatMongoScript:
		out, err := RenderMongoScript(records, target)
		return []byte(out), err
	case FormatCSV:
		return RenderCSV(records)
	case FormatXLSX:
		return RenderXLSX(records)
	}
	return nil, apperrors.InvalidField("format", "unsupported export format "+string(format))
}

func (s *Service) mongoTarget(t MongoTarget) MongoTarget {
	if t.Database == "" {
		t.Database = s.mongo.Database
	}
	if t.Collection == "" {
		t.Collection = s.mongo.Collection
	}
	return t
}

// Filename returns the download name for format on the given day.
func Filename(format Format, at time.Time) string {
	day := at.UTC().Format("2006-01-02")
	switch format {
	case FormatMongoScript:
		return "mongodb_import_" + day + ".js"
	case FormatSQL:
		return "translations_" + day + ".sql"
	default:
		return "translations_" + day + "." + string(format)
	}
}

// ContentType returns the MIME type served for format.
func ContentType(format Format) string {
	switch format {
	case FormatJSON:
		return "application/json"
	case FormatSQL:
		return "text/sql"
	case FormatMongoScript:
		return "application/javascript"
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}
