package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-notes/internal/api/middleware"
	"voice-notes/internal/api/v1/services"
)

// AudioHandler serves playback handles
type AudioHandler struct {
	service services.AudioService
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(service services.AudioService) *AudioHandler {
	return &AudioHandler{service: service}
}

// Stream handles GET /api/v1/audio/:handle
//
// @Summary Stream a recording
// @Tags audio
// @Produce octet-stream
// @Param handle path string true "Playback handle ID"
// @Success 200 {file} binary "Audio payload with its stored MIME type"
// @Failure 404 {object} errors.APIError "Handle unknown or released"
// @Router /audio/{handle} [get]
func (h *AudioHandler) Stream(c *gin.Context) {
	file, err := h.service.ResolveAudio(c.Param("handle"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.MimeType, file.Data)
}

// Release handles DELETE /api/v1/audio/:handle
//
// @Summary Release a playback handle
// @Tags audio
// @Param handle path string true "Playback handle ID"
// @Success 204 "Handle released"
// @Failure 404 {object} errors.APIError "Handle unknown or already released"
// @Router /audio/{handle} [delete]
func (h *AudioHandler) Release(c *gin.Context) {
	if err := h.service.ReleaseAudio(c.Param("handle")); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
