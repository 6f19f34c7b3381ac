package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Design Conversion ---
	convertGroup := router.Group("/convert")
	{
		convertGroup.POST("/generate", h.GenerateArchive) // Generate a project and download it as a zip
		convertGroup.POST("/preview", h.PreviewFiles)     // Generate a project and return the files as JSON
	}

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
