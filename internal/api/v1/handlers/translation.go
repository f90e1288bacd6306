package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"voice-notes/internal/api/errors"
	"voice-notes/internal/api/middleware"
	"voice-notes/internal/api/v1/dto"
	"voice-notes/internal/api/v1/services"
)

// MaxUploadBytes caps multipart audio uploads.
const MaxUploadBytes = 25 << 20

// TranslationHandler handles translation-related API endpoints
type TranslationHandler struct {
	service services.TranslationService
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(service services.TranslationService) *TranslationHandler {
	return &TranslationHandler{
		service: service,
	}
}

// List handles GET /api/v1/translations
//
// @Summary List translations
// @Description Returns every translation, newest first. Each record with audio carries a fresh playback handle.
// @Tags translations
// @Produce json
// @Success 200 {object} dto.ListTranslationsResponse "All translations"
// @Failure 503 {object} errors.APIError "Storage backend unavailable"
// @Header 200 {string} X-Total-Count "Total number of translations"
// @Router /translations [get]
func (h *TranslationHandler) List(c *gin.Context) {
	response, err := h.service.ListTranslations(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(response.Total))
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/translations/:id
//
// @Summary Get translation by ID
// @Tags translations
// @Produce json
// @Param id path int true "Translation ID" minimum(1)
// @Success 200 {object} dto.TranslationResponse "Translation details"
// @Failure 400 {object} errors.APIError "Bad request - invalid ID"
// @Failure 404 {object} errors.APIError "Translation not found"
// @Router /translations/{id} [get]
func (h *TranslationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	response, err := h.service.GetTranslation(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/v1/translations
//
// @Summary Create a translation
// @Description Stores a translation. Audio is a data URL or bare base64 body; when text is empty the audio is transcribed.
// @Tags translations
// @Accept json
// @Produce json
// @Param translation body dto.CreateTranslationRequest true "Translation data"
// @Success 201 {object} dto.TranslationResponse "Translation created"
// @Failure 422 {object} errors.APIError "Validation or decode error"
// @Failure 502 {object} errors.APIError "Transcription failed"
// @Router /translations [post]
func (h *TranslationHandler) Create(c *gin.Context) {
	var req dto.CreateTranslationRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.CreateTranslation(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Upload handles POST /api/v1/translations/upload
//
// @Summary Upload a recording
// @Description Transcribes an uploaded audio file and stores the result
// @Tags translations
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Recorded audio"
// @Param duration formData number false "Recording length in seconds"
// @Success 201 {object} dto.TranslationResponse "Recording transcribed and stored"
// @Failure 400 {object} errors.APIError "Bad request - no file"
// @Failure 502 {object} errors.APIError "Transcription failed"
// @Router /translations/upload [post]
func (h *TranslationHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No file uploaded"))
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes+1))
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Failed to read upload"))
		return
	}
	if len(audio) > MaxUploadBytes {
		middleware.HandleError(c, errors.NewBadRequestError("File too large"))
		return
	}

	var duration float64
	if raw := c.PostForm("duration"); raw != "" {
		duration, err = strconv.ParseFloat(raw, 64)
		if err != nil || duration < 0 {
			middleware.HandleError(c, errors.NewValidationError("Invalid upload", map[string]string{
				"duration": "must be a non-negative number",
			}))
			return
		}
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "application/octet-stream" {
		mimeType = ""
	}

	response, err := h.service.UploadTranslation(c.Request.Context(), audio, mimeType, duration)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Update handles PATCH /api/v1/translations/:id
//
// @Summary Replace a translation's text
// @Description Replaces the text and refreshes the timestamp. Audio is untouched.
// @Tags translations
// @Accept json
// @Produce json
// @Param id path int true "Translation ID" minimum(1)
// @Param translation body dto.UpdateTranslationRequest true "New text"
// @Success 200 {object} dto.TranslationResponse "Updated translation"
// @Failure 404 {object} errors.APIError "Translation not found"
// @Failure 422 {object} errors.APIError "Validation error"
// @Router /translations/{id} [patch]
func (h *TranslationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateTranslationRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.UpdateTranslation(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Reprocess handles POST /api/v1/translations/:id/reprocess
//
// @Summary Re-run transcription
// @Tags translations
// @Produce json
// @Param id path int true "Translation ID" minimum(1)
// @Success 200 {object} dto.TranslationResponse "Reprocessed translation"
// @Failure 404 {object} errors.APIError "Translation not found"
// @Failure 502 {object} errors.APIError "Transcription failed"
// @Router /translations/{id}/reprocess [post]
func (h *TranslationHandler) Reprocess(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	response, err := h.service.ReprocessTranslation(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Base64 handles GET /api/v1/translations/:id/base64
//
// @Summary Get a translation's audio as base64
// @Tags translations
// @Produce json
// @Param id path int true "Translation ID" minimum(1)
// @Success 200 {object} dto.Base64Response "Encoded audio"
// @Failure 404 {object} errors.APIError "Translation not found"
// @Failure 422 {object} errors.APIError "Record has no audio"
// @Router /translations/{id}/base64 [get]
func (h *TranslationHandler) Base64(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	response, err := h.service.GetBase64(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/v1/translations/:id
//
// @Summary Delete a translation
// @Description Releases the record's playback handles and removes it. Unknown IDs succeed.
// @Tags translations
// @Param id path int true "Translation ID" minimum(1)
// @Success 204 "Translation deleted"
// @Failure 400 {object} errors.APIError "Bad request - invalid ID"
// @Router /translations/{id} [delete]
func (h *TranslationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTranslation(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /api/v1/translations
//
// @Summary Delete every translation
// @Tags translations
// @Success 204 "Store cleared"
// @Failure 503 {object} errors.APIError "Storage backend unavailable"
// @Router /translations [delete]
func (h *TranslationHandler) Clear(c *gin.Context) {
	if err := h.service.ClearTranslations(c.Request.Context()); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		middleware.HandleError(c, errors.NewBadRequestError("Invalid translation ID"))
		return 0, false
	}
	return id, true
}
