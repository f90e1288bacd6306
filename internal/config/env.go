package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	OpenAI string
	Gemini string
}

// LoadEnv loads environment variables from the first .env file found.
// A missing file is not an error; variables may be set system-wide.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// GetAPIKeys retrieves and validates API keys from environment variables
// Implements fail-fast: returns error immediately if a key is malformed
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Gemini: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
	}

	if apiKeys.OpenAI != "" {
		if err := ValidateAPIKey(apiKeys.OpenAI, "OpenAI"); err != nil {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY: %w", err)
		}
	}
	if apiKeys.Gemini != "" {
		if err := ValidateAPIKey(apiKeys.Gemini, "Gemini"); err != nil {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY: %w", err)
		}
	}

	return apiKeys, nil
}

// GetProjectRoot finds the project root directory by looking for go.mod
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod not found)")
}

func getEnvOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
