package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voice-notes/internal/api/v1/dto"
	v1routes "voice-notes/internal/api/v1/routes"
	"voice-notes/internal/app/testutil"
	"voice-notes/internal/config"
)

func newTestServer(t *testing.T) (*Server, *testutil.MockServices) {
	gin.SetMode(gin.TestMode)
	ms := testutil.NewMockServices(t)
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "vnote_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	srv := NewServer(DefaultConfig(config.ServerConfig{Host: "127.0.0.1", Port: "0"}), &v1routes.ServiceContainer{
		TranslationService: ms.TranslationService,
		AudioService:       ms.AudioService,
		ExportService:      ms.ExportService,
	}, reg, zap.NewNop())
	return srv, ms
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestServer_Metrics(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "vnote_test_total 1")
}

func TestServer_RoutesAPIAndKeepsRequestID(t *testing.T) {
	srv, ms := newTestServer(t)
	ms.TranslationService.On("ListTranslations", mock.Anything).
		Return(&dto.ListTranslationsResponse{Translations: []dto.TranslationResponse{}}, nil)

	req := httptest.NewRequest("GET", "/api/v1/translations", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "0", rec.Header().Get("X-Total-Count"))
}

func TestServer_ErrorCarriesRequestID(t *testing.T) {
	srv, ms := newTestServer(t)
	ms.TranslationService.On("ListTranslations", mock.Anything).Return(nil, assert.AnError)

	req := httptest.NewRequest("GET", "/api/v1/translations", nil)
	req.Header.Set("X-Request-ID", "req-500")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal", body["kind"])
	assert.Equal(t, "req-500", body["request_id"])
}

func TestServer_CORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("OPTIONS", "/api/v1/translations", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
}

func TestServer_Index(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/export")
}
