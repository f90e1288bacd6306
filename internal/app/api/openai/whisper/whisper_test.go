package whisper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"

	apperrors "voice-notes/internal/app/errors"
)

func newTestClient(serverURL string) *openai.Client {
	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = serverURL + "/v1"
	return openai.NewClientWithConfig(config)
}

// TestRemoteTranslator_Translate tests the RemoteTranslator implementation
func TestRemoteTranslator_Translate(t *testing.T) {
	tests := []struct {
		name          string
		mimeType      string
		mockResponse  string
		mockStatus    int
		expectedText  string
		expectedFile  string
		expectError   bool
		errorContains string
	}{
		{
			name:         "successful transcription",
			mimeType:     "audio/webm;codecs=opus",
			mockResponse: `{"text": "This is a test transcription"}`,
			mockStatus:   http.StatusOK,
			expectedText: "This is a test transcription",
			expectedFile: "recording.webm",
		},
		{
			name:         "special characters",
			mimeType:     "audio/wav",
			mockResponse: `{"text": "Hello, 世界! This is a test with émojis 🎵"}`,
			mockStatus:   http.StatusOK,
			expectedText: "Hello, 世界! This is a test with émojis 🎵",
			expectedFile: "recording.wav",
		},
		{
			name:         "surrounding whitespace trimmed",
			mimeType:     "audio/ogg",
			mockResponse: `{"text": "  Line 1\nLine 2\n"}`,
			mockStatus:   http.StatusOK,
			expectedText: "Line 1\nLine 2",
			expectedFile: "recording.ogg",
		},
		{
			name:          "API error - unauthorized",
			mimeType:      "audio/webm",
			mockResponse:  `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusUnauthorized,
			expectError:   true,
			errorContains: "401",
		},
		{
			name:          "API error - rate limit",
			mimeType:      "audio/webm",
			mockResponse:  `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`,
			mockStatus:    http.StatusTooManyRequests,
			expectError:   true,
			errorContains: "429",
		},
		{
			name:         "invalid JSON response",
			mimeType:     "audio/webm",
			mockResponse: `{"text": "incomplete JSON`,
			mockStatus:   http.StatusOK,
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") == "" {
					t.Error("Missing Authorization header")
				}
				if !strings.HasSuffix(r.URL.Path, "/audio/transcriptions") {
					t.Errorf("Unexpected path %s", r.URL.Path)
				}
				if err := r.ParseMultipartForm(32 << 20); err != nil {
					t.Errorf("Failed to parse multipart form: %v", err)
				}
				if model := r.FormValue("model"); model != "whisper-1" {
					t.Errorf("Expected model whisper-1, got %s", model)
				}

				file, header, err := r.FormFile("file")
				if err != nil {
					t.Errorf("Failed to get file from form: %v", err)
				} else {
					defer file.Close()
					body, _ := io.ReadAll(file)
					if string(body) != "fake audio" {
						t.Errorf("Unexpected upload body %q", body)
					}
					if tt.expectedFile != "" && header.Filename != tt.expectedFile {
						t.Errorf("Expected filename %s, got %s", tt.expectedFile, header.Filename)
					}
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.mockStatus)
				w.Write([]byte(tt.mockResponse))
			}))
			defer server.Close()

			rt := NewRemoteTranslator(newTestClient(server.URL))
			result, err := rt.Translate(context.Background(), []byte("fake audio"), tt.mimeType)

			if tt.expectError {
				if err == nil {
					t.Fatalf("Expected error but got none")
				}
				if !apperrors.IsTranscription(err) {
					t.Errorf("Expected TranscriptionError, got %T", err)
				}
				if tt.errorContains != "" && !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("Expected error containing '%s', got '%s'", tt.errorContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result != tt.expectedText {
				t.Errorf("Expected text '%s', got '%s'", tt.expectedText, result)
			}
		})
	}
}

func TestRemoteTranslator_EmptyPayload(t *testing.T) {
	rt := NewRemoteTranslator(openai.NewClient("test-api-key"))

	_, err := rt.Translate(context.Background(), nil, "audio/webm")
	if !apperrors.IsTranscription(err) {
		t.Errorf("Expected TranscriptionError, got %v", err)
	}
}

func TestRemoteTranslator_ModelAndLanguage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(1 << 20)
		if got := r.FormValue("model"); got != "gpt-4o-transcribe" {
			t.Errorf("Expected custom model, got %s", got)
		}
		if got := r.FormValue("language"); got != "de" {
			t.Errorf("Expected language de, got %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "Hallo"}`))
	}))
	defer server.Close()

	rt := NewRemoteTranslator(newTestClient(server.URL), WithModel("gpt-4o-transcribe"), WithLanguage("de"))
	result, err := rt.Translate(context.Background(), []byte("fake audio"), "audio/webm")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "Hallo" {
		t.Errorf("Expected 'Hallo', got '%s'", result)
	}
}

// TestRemoteTranslator_ContextCancelled tests that a cancelled context aborts the upload
func TestRemoteTranslator_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{"text": "too late"}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	rt := NewRemoteTranslator(newTestClient(server.URL))
	_, err := rt.Translate(ctx, []byte("fake audio"), "audio/webm")
	if err == nil {
		t.Fatal("Expected timeout error, got none")
	}
	if !strings.Contains(err.Error(), "deadline exceeded") {
		t.Errorf("Expected deadline error, got: %v", err)
	}
}

// TestRemoteTranslator_ConcurrentRequests tests concurrent transcription requests
func TestRemoteTranslator_ConcurrentRequests(t *testing.T) {
	var requestCount atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := requestCount.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fmt.Sprintf(`{"text": "Transcription %d"}`, n)))
	}))
	defer server.Close()

	rt := NewRemoteTranslator(newTestClient(server.URL))

	numRequests := 5
	results := make(chan string, numRequests)
	errs := make(chan error, numRequests)
	for i := 0; i < numRequests; i++ {
		go func() {
			result, err := rt.Translate(context.Background(), []byte("fake audio"), "audio/webm")
			if err != nil {
				errs <- err
				return
			}
			results <- result
		}()
	}

	for i := 0; i < numRequests; i++ {
		select {
		case err := <-errs:
			t.Errorf("Unexpected error in concurrent request: %v", err)
		case result := <-results:
			if !strings.HasPrefix(result, "Transcription") {
				t.Errorf("Unexpected result: %s", result)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Timeout waiting for concurrent requests")
		}
	}
	if got := requestCount.Load(); got != int32(numRequests) {
		t.Errorf("Expected %d requests, got %d", numRequests, got)
	}
}
