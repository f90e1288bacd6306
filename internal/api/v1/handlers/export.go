package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-notes/internal/api/middleware"
	"voice-notes/internal/api/v1/dto"
	"voice-notes/internal/api/v1/services"
)

// ExportHandler handles export-related HTTP requests
type ExportHandler struct {
	service services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{
		service: service,
	}
}

// Export handles GET /api/v1/export
//
// @Summary Export every translation
// @Description Renders the whole store as a download. mongo-script targets the given database and collection.
// @Tags export
// @Produce json,plain
// @Param format query string false "Export format" default(json) Enums(json,sql,sqlite,mongo-script,mongodb,csv,xlsx)
// @Param database query string false "MongoDB database for mongo-script" default(audio_translations)
// @Param collection query string false "MongoDB collection for mongo-script" default(translations)
// @Success 200 {file} binary "Export file"
// @Failure 409 {object} errors.APIError "No translations to export"
// @Failure 422 {object} errors.APIError "Unsupported format or invalid target"
// @Router /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	var query dto.ExportQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	file, err := h.service.Export(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
