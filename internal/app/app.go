// Package app assembles the voice-notes components from configuration.
package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"voice-notes/internal/app/api"
	"voice-notes/internal/app/api/provider"
	"voice-notes/internal/app/codec"
	"voice-notes/internal/app/common"
	"voice-notes/internal/app/export"
	"voice-notes/internal/app/metrics"
	"voice-notes/internal/app/repository"
	"voice-notes/internal/app/repository/pg"
	"voice-notes/internal/app/repository/redisdb"
	"voice-notes/internal/app/repository/sqlite"
	"voice-notes/internal/app/session"
	"voice-notes/internal/app/store"
	"voice-notes/internal/config"
)

// App holds every long-lived component. Build it with InitializeApp.
type App struct {
	Config     *config.AppConfig
	Logger     *zap.Logger
	Registry   *prometheus.Registry
	Metrics    *metrics.Metrics
	Handles    *codec.HandleRegistry
	DAO        repository.TranslationDAO
	Store      *store.Store
	Translator api.TranslationClient
	Session    *session.Session
	Exporter   *export.Service
}

// NewApp groups the components.
func NewApp(
	cfg *config.AppConfig,
	logger *zap.Logger,
	reg *prometheus.Registry,
	m *metrics.Metrics,
	handles *codec.HandleRegistry,
	dao repository.TranslationDAO,
	st *store.Store,
	translator api.TranslationClient,
	sess *session.Session,
	exporter *export.Service,
) *App {
	return &App{
		Config:     cfg,
		Logger:     logger,
		Registry:   reg,
		Metrics:    m,
		Handles:    handles,
		DAO:        dao,
		Store:      st,
		Translator: translator,
		Session:    sess,
		Exporter:   exporter,
	}
}

// OpenDAO opens the backend named by cfg.Driver.
func OpenDAO(ctx context.Context, cfg config.DatabaseConfig) (repository.TranslationDAO, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "sqlite", "":
		db, err := sqlite.NewSQLiteDB(cfg.DSN)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.DriverPostgres:
		db, err := pg.NewPostgresDB(cfg.DSN)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	case config.DriverRedis:
		dao, err := redisdb.Open(ctx, cfg.DSN, cfg.RedisPrefix)
		if err != nil {
			return nil, err
		}
		return dao, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

func provideLogger(cfg *config.AppConfig) (*zap.Logger, func(), error) {
	logger, err := common.NewLogger(cfg.Log.Development)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

func provideMetrics(reg *prometheus.Registry) (*metrics.Metrics, error) {
	return metrics.New(reg)
}

func provideDAO(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (repository.TranslationDAO, func(), error) {
	dao, err := OpenDAO(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s backend: %w", cfg.Database.Driver, err)
	}
	logger.Info("database opened", zap.String("driver", cfg.Database.Driver))
	return dao, func() {
		if err := dao.Close(); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}, nil
}

func provideStore(dao repository.TranslationDAO, handles *codec.HandleRegistry, logger *zap.Logger, m *metrics.Metrics) *store.Store {
	return store.New(dao, handles,
		store.WithLogger(common.Component(logger, "store")),
		store.WithMetrics(m))
}

func provideTranslator(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger, m *metrics.Metrics) (api.TranslationClient, error) {
	client, err := provider.NewTranslationClient(ctx, cfg.Translator)
	if err != nil {
		return nil, err
	}
	return provider.NewInstrumented(client, cfg.Translator.Timeout(), m, common.Component(logger, "translator")), nil
}

func provideSession(client api.TranslationClient, st *store.Store, logger *zap.Logger) (*session.Session, func()) {
	sess := session.New(client, st, session.WithLogger(common.Component(logger, "session")))
	return sess, sess.Close
}

func provideExporter(st *store.Store, cfg *config.AppConfig, logger *zap.Logger, m *metrics.Metrics) *export.Service {
	return export.NewService(st,
		export.WithLogger(common.Component(logger, "export")),
		export.WithMetrics(m),
		export.WithMongoDefaults(export.MongoTarget{
			Database:   cfg.Export.MongoDatabase,
			Collection: cfg.Export.MongoCollection,
		}))
}
