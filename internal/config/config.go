package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported storage drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Supported translators.
const (
	TranslatorMock   = "mock"
	TranslatorOpenAI = "openai"
	TranslatorGemini = "gemini"
)

// Defaults
const (
	DefaultSQLitePath       = "data/translations.db"
	DefaultRedisPrefix      = "vnote"
	DefaultHTTPHost         = "0.0.0.0"
	DefaultHTTPPort         = "8080"
	DefaultTranslateTimeout = 60
	DefaultMongoDatabase    = "audio_translations"
	DefaultMongoCollection  = "translations"
	DefaultArchiveBucket    = "voice-notes"
	DefaultMockMinDelayMs   = 2000
	DefaultMockMaxDelayMs   = 5000
)

// AppConfig is the root of the YAML configuration file.
type AppConfig struct {
	Database   DatabaseConfig   `yaml:"database"`
	Translator TranslatorConfig `yaml:"translator"`
	Export     ExportConfig     `yaml:"export"`
	Server     ServerConfig     `yaml:"server"`
	Archive    ArchiveConfig    `yaml:"archive"`
	Log        LogConfig        `yaml:"log"`
}

// DatabaseConfig selects the persistence backend.
type DatabaseConfig struct {
	Driver      string `yaml:"driver"`
	DSN         string `yaml:"dsn"`
	RedisPrefix string `yaml:"redis_prefix,omitempty"`
}

// TranslatorConfig selects and configures the transcription backend.
type TranslatorConfig struct {
	Provider       string `yaml:"provider"`
	APIKey         string `yaml:"api_key,omitempty"`
	BaseURL        string `yaml:"base_url,omitempty"`
	Model          string `yaml:"model,omitempty"`
	Language       string `yaml:"language,omitempty"`
	TimeoutSec     int    `yaml:"timeout_sec,omitempty"`
	MockMinDelayMs int    `yaml:"mock_min_delay_ms,omitempty"`
	MockMaxDelayMs int    `yaml:"mock_max_delay_ms,omitempty"`
}

// Timeout returns the request timeout as a duration.
func (t TranslatorConfig) Timeout() time.Duration {
	return time.Duration(t.TimeoutSec) * time.Second
}

// ExportConfig holds defaults for the export command and endpoint.
type ExportConfig struct {
	MongoDatabase   string `yaml:"mongo_database"`
	MongoCollection string `yaml:"mongo_collection"`
	OutputDir       string `yaml:"output_dir,omitempty"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host        string   `yaml:"host"`
	Port        string   `yaml:"port"`
	Mode        string   `yaml:"mode,omitempty"`
	CORSOrigins []string `yaml:"cors_origins,omitempty"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// ArchiveConfig points at an S3-compatible bucket for audio archiving.
type ArchiveConfig struct {
	Endpoint  string `yaml:"endpoint,omitempty"`
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
	Bucket    string `yaml:"bucket,omitempty"`
	Region    string `yaml:"region,omitempty"`
	UseSSL    bool   `yaml:"use_ssl,omitempty"`
}

// Enabled reports whether an archive endpoint is configured.
func (a ArchiveConfig) Enabled() bool {
	return a.Endpoint != ""
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Development bool `yaml:"development"`
}

// DefaultConfig works without any file or environment.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Database: DatabaseConfig{
			Driver:      DriverSQLite,
			DSN:         DefaultSQLitePath,
			RedisPrefix: DefaultRedisPrefix,
		},
		Translator: TranslatorConfig{
			Provider:       TranslatorMock,
			TimeoutSec:     DefaultTranslateTimeout,
			MockMinDelayMs: DefaultMockMinDelayMs,
			MockMaxDelayMs: DefaultMockMaxDelayMs,
		},
		Export: ExportConfig{
			MongoDatabase:   DefaultMongoDatabase,
			MongoCollection: DefaultMongoCollection,
		},
		Server: ServerConfig{
			Host: DefaultHTTPHost,
			Port: DefaultHTTPPort,
		},
		Archive: ArchiveConfig{
			Bucket: DefaultArchiveBucket,
		},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// environment overrides and validates the result. An empty path skips the file.
func Load(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	if path != "" {
		path = os.ExpandEnv(path)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := Parse([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document does not set.
func Parse(data []byte, cfg *AppConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// Save writes cfg as YAML, creating parent directories.
func Save(cfg *AppConfig, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ApplyEnv overlays VNOTE_*, MINIO_* and provider API key variables.
func (c *AppConfig) ApplyEnv() error {
	c.Database.Driver = getEnvOrDefault("VNOTE_DB_DRIVER", c.Database.Driver)
	c.Database.DSN = getEnvOrDefault("VNOTE_DB_DSN", c.Database.DSN)
	c.Translator.Provider = getEnvOrDefault("VNOTE_TRANSLATOR", c.Translator.Provider)
	c.Server.Port = getEnvOrDefault("VNOTE_HTTP_PORT", c.Server.Port)

	c.Archive.Endpoint = getEnvOrDefault("MINIO_ENDPOINT", c.Archive.Endpoint)
	c.Archive.AccessKey = getEnvOrDefault("MINIO_ACCESS_KEY", c.Archive.AccessKey)
	c.Archive.SecretKey = getEnvOrDefault("MINIO_SECRET_KEY", c.Archive.SecretKey)
	c.Archive.Bucket = getEnvOrDefault("MINIO_BUCKET", c.Archive.Bucket)
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		c.Archive.UseSSL = strings.EqualFold(v, "true")
	}

	if c.Translator.APIKey != "" {
		return nil
	}
	keys, err := GetAPIKeys()
	if err != nil {
		return err
	}
	switch c.Translator.Provider {
	case TranslatorOpenAI:
		c.Translator.APIKey = keys.OpenAI
	case TranslatorGemini:
		c.Translator.APIKey = keys.Gemini
	}
	return nil
}

// Validate checks the whole configuration.
func (c *AppConfig) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres, DriverRedis:
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database dsn is required")
	}

	switch c.Translator.Provider {
	case TranslatorMock:
		if c.Translator.MockMinDelayMs < 0 || c.Translator.MockMaxDelayMs < 0 {
			return fmt.Errorf("mock translator delays cannot be negative")
		}
	case TranslatorOpenAI, TranslatorGemini:
		if c.Translator.APIKey == "" {
			return fmt.Errorf("%s translator requires an API key", c.Translator.Provider)
		}
		if err := ValidateTimeout(c.Translator.Timeout(), c.Translator.Provider); err != nil {
			return err
		}
		if c.Translator.BaseURL != "" {
			if err := ValidateURL(c.Translator.BaseURL, c.Translator.Provider); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported translator: %q", c.Translator.Provider)
	}

	if err := ValidateIdentifier(c.Export.MongoDatabase, "export mongo_database"); err != nil {
		return err
	}
	if err := ValidateIdentifier(c.Export.MongoCollection, "export mongo_collection"); err != nil {
		return err
	}

	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		return err
	}

	if c.Archive.Enabled() && c.Archive.Bucket == "" {
		return fmt.Errorf("archive bucket is required when an endpoint is set")
	}
	return nil
}
