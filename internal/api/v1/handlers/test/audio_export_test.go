package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"voice-notes/internal/api/errors"
	"voice-notes/internal/api/v1/dto"
	apperrors "voice-notes/internal/app/errors"
)

func TestAudioHandler_Stream(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	mockServices.AudioService.On("ResolveAudio", "abc").
		Return(&dto.AudioFile{RecordID: 1, MimeType: "audio/ogg", Data: []byte("oggs")}, nil)
	mockServices.AudioService.On("ResolveAudio", "gone").
		Return(nil, errors.NewNotFoundError("Audio handle"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/audio/abc", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/ogg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "oggs", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/audio/gone", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAudioHandler_Release(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	mockServices.AudioService.On("ReleaseAudio", "abc").Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/v1/audio/abc", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockServices.AudioService.AssertExpectations(t)
}

func TestExportHandler_Export(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		query          dto.ExportQuery
		result         *dto.ExportFile
		err            error
		expectedStatus int
		disposition    string
	}{
		{
			name:  "mongo script",
			url:   "/api/v1/export?format=mongodb&database=notes&collection=clips",
			query: dto.ExportQuery{Format: "mongodb", Database: "notes", Collection: "clips"},
			result: &dto.ExportFile{
				Filename:    "mongodb_import_2024-05-10.js",
				ContentType: "application/javascript",
				Content:     []byte("use notes;"),
			},
			expectedStatus: http.StatusOK,
			disposition:    `attachment; filename="mongodb_import_2024-05-10.js"`,
		},
		{
			name:           "empty store",
			url:            "/api/v1/export?format=json",
			query:          dto.ExportQuery{Format: "json"},
			err:            &apperrors.EmptyStoreError{},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "unsupported format",
			url:            "/api/v1/export?format=pdf",
			query:          dto.ExportQuery{Format: "pdf"},
			err:            apperrors.InvalidField("format", "unsupported export format pdf"),
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			if tt.err != nil {
				mockServices.ExportService.On("Export", mock.Anything, tt.query).Return(nil, tt.err)
			} else {
				mockServices.ExportService.On("Export", mock.Anything, tt.query).Return(tt.result, nil)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", tt.url, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.disposition != "" {
				assert.Equal(t, tt.disposition, rec.Header().Get("Content-Disposition"))
				assert.Equal(t, "use notes;", rec.Body.String())
			}
			mockServices.ExportService.AssertExpectations(t)
		})
	}
}
