package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAPIKeys(t *testing.T) {
	testCases := []struct {
		name          string
		openaiKey     string
		geminiKey     string
		expectError   bool
		errorContains string
	}{
		{
			name:      "valid OpenAI key",
			openaiKey: "sk-1234567890abcdef1234567890abcdef",
		},
		{
			name:      "valid Gemini key",
			geminiKey: "AIzaTest-1234567890abcdef1234567890",
		},
		{
			name:          "invalid OpenAI key format",
			openaiKey:     "invalid-key",
			expectError:   true,
			errorContains: "invalid OPENAI_API_KEY",
		},
		{
			name:          "OpenAI key too short",
			openaiKey:     "sk-short",
			expectError:   true,
			errorContains: "too short",
		},
		{
			name:          "invalid Gemini key format",
			geminiKey:     "invalid-key",
			expectError:   true,
			errorContains: "invalid GEMINI_API_KEY",
		},
		{
			name: "empty keys are allowed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", tc.openaiKey)
			t.Setenv("GEMINI_API_KEY", tc.geminiKey)

			apiKeys, err := GetAPIKeys()

			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.openaiKey, apiKeys.OpenAI)
			assert.Equal(t, tc.geminiKey, apiKeys.Gemini)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	t.Run("no env file", func(t *testing.T) {
		path, err := LoadEnv()
		assert.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("loads .env", func(t *testing.T) {
		t.Setenv("VNOTE_TEST_VALUE", "")
		os.Unsetenv("VNOTE_TEST_VALUE")
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("VNOTE_TEST_VALUE=from-file\n"), 0644))

		path, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, ".env", path)
		assert.Equal(t, "from-file", os.Getenv("VNOTE_TEST_VALUE"))
	})
}
