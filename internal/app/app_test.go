package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-notes/internal/app/api"
	"voice-notes/internal/app/export"
	"voice-notes/internal/app/repository/sqlite"
	"voice-notes/internal/config"
)

func testConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Database.DSN = filepath.Join(t.TempDir(), "app.db")
	cfg.Translator.MockMinDelayMs = 0
	cfg.Translator.MockMaxDelayMs = 0
	return cfg
}

func TestOpenDAO_SQLite(t *testing.T) {
	dao, err := OpenDAO(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "x.db"),
	})
	require.NoError(t, err)
	defer dao.Close()

	_, ok := dao.(*sqlite.SQLiteDB)
	assert.True(t, ok)
}

func TestOpenDAO_UnknownDriver(t *testing.T) {
	_, err := OpenDAO(context.Background(), config.DatabaseConfig{Driver: "cassandra", DSN: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestOpenDAO_BadRedisURL(t *testing.T) {
	dao, err := OpenDAO(context.Background(), config.DatabaseConfig{Driver: config.DriverRedis, DSN: "http://nope"})
	require.Error(t, err)
	// assert.Nil would also accept a typed nil pointer inside the interface.
	assert.True(t, dao == nil, "got %T", dao)
}

func TestOpenDAO_SQLiteErrorReturnsNilInterface(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	dao, err := OpenDAO(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(blocker, "x.db"),
	})
	require.Error(t, err)
	assert.True(t, dao == nil, "got %T", dao)
}

func TestInitializeApp(t *testing.T) {
	ctx := context.Background()
	a, cleanup, err := InitializeApp(ctx, testConfig(t))
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "mock", api.ProviderName(a.Translator))

	rec, err := a.Session.Capture(ctx, make([]byte, 6000), "audio/webm", 2)
	require.NoError(t, err)
	assert.Contains(t, rec.Text, "longer audio translation")

	res, err := a.Exporter.Export(ctx, export.Request{Format: export.FormatMongoScript})
	require.NoError(t, err)
	assert.Contains(t, string(res.Content), "use audio_translations;")

	families, err := a.Registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "vnote_store_operations_total")
	assert.Contains(t, names, "vnote_translate_duration_seconds")
}

func TestInitializeApp_UnknownProvider(t *testing.T) {
	cfg := testConfig(t)
	cfg.Translator.Provider = "azure"

	_, _, err := InitializeApp(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider type")
}
