package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidateAPIKey validates API key format
func ValidateAPIKey(apiKey string, keyType string) error {
	if apiKey == "" {
		return fmt.Errorf("%s API key is required", keyType)
	}

	switch keyType {
	case "OpenAI":
		if !strings.HasPrefix(apiKey, "sk-") {
			return fmt.Errorf("invalid OpenAI API key format: must start with 'sk-'")
		}
		if len(apiKey) < 20 {
			return fmt.Errorf("invalid OpenAI API key format: too short")
		}
	case "Gemini":
		if !strings.HasPrefix(apiKey, "AIza") {
			return fmt.Errorf("invalid Gemini API key format: must start with 'AIza'")
		}
		if len(apiKey) < 30 {
			return fmt.Errorf("invalid Gemini API key format: too short")
		}
	}

	return nil
}

// ValidateURL validates URL format
func ValidateURL(url string, name string) error {
	if url == "" {
		return fmt.Errorf("%s URL is required", name)
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%s URL must start with http:// or https://", name)
	}

	return nil
}

// ValidatePort validates port number
func ValidatePort(port string, name string) error {
	if port == "" {
		return fmt.Errorf("%s port is required", name)
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%s port invalid: %q", name, port)
	}

	return nil
}

// ValidateIdentifier checks names that end up inside generated scripts.
func ValidateIdentifier(value string, name string) error {
	if !identifierPattern.MatchString(value) {
		return fmt.Errorf("%s must match %s, got %q", name, identifierPattern.String(), value)
	}
	return nil
}
