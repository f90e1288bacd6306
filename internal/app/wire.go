//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"voice-notes/internal/app/codec"
	"voice-notes/internal/config"
)

var componentSet = wire.NewSet(
	provideLogger,
	provideRegistry,
	provideMetrics,
	codec.NewHandleRegistry,
	provideDAO,
	provideStore,
	provideTranslator,
	provideSession,
	provideExporter,
	NewApp,
)

// InitializeApp builds the full component graph. The cleanup func closes the
// backend and flushes the logger.
func InitializeApp(ctx context.Context, cfg *config.AppConfig) (*App, func(), error) {
	wire.Build(componentSet)
	return &App{}, nil, nil
}
