package routes

import (
	"github.com/gin-gonic/gin"

	"voice-notes/internal/api/v1/handlers"
	"voice-notes/internal/api/v1/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	translationHandler := handlers.NewTranslationHandler(container.TranslationService)
	translations := router.Group("/translations")
	{
		translations.GET("", translationHandler.List)
		translations.POST("", translationHandler.Create)
		translations.DELETE("", translationHandler.Clear)
		translations.POST("/upload", translationHandler.Upload)
		translations.GET("/:id", translationHandler.Get)
		translations.PATCH("/:id", translationHandler.Update)
		translations.DELETE("/:id", translationHandler.Delete)
		translations.POST("/:id/reprocess", translationHandler.Reprocess)
		translations.GET("/:id/base64", translationHandler.Base64)
	}

	audioHandler := handlers.NewAudioHandler(container.AudioService)
	audio := router.Group("/audio")
	{
		audio.GET("/:handle", audioHandler.Stream)
		audio.DELETE("/:handle", audioHandler.Release)
	}

	if container.ExportService != nil {
		exportHandler := handlers.NewExportHandler(container.ExportService)
		router.GET("/export", exportHandler.Export)
	}
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranslationService services.TranslationService
	AudioService       services.AudioService
	ExportService      services.ExportService
}
