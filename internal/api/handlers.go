package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"figma_react_server/internal/export"
	"figma_react_server/internal/figma"
	"figma_react_server/internal/packager"
	"figma_react_server/internal/types"
	"figma_react_server/internal/utils"
)

// CodeGenerator produces raw model output for a design description.
type CodeGenerator interface {
	GenerateReactCode(ctx context.Context, designDescription, figmaURL, designName string) (string, error)
}

// DesignMetaFetcher resolves metadata for a Figma file key.
type DesignMetaFetcher interface {
	GetFileMeta(ctx context.Context, fileKey string) (*figma.FileMeta, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator   CodeGenerator // nil when no API key is configured
	figmaClient DesignMetaFetcher
	exporter    *export.Exporter
}

// NewAPIHandler initializes a new API handler with its dependencies.
// generator may be nil; conversion endpoints then degrade to 503.
func NewAPIHandler(generator CodeGenerator, figmaClient DesignMetaFetcher, exporter *export.Exporter) *APIHandler {
	return &APIHandler{
		generator:   generator,
		figmaClient: figmaClient,
		exporter:    exporter,
	}
}

// --- Structs for API Requests/Responses ---

type ConvertRequest struct {
	Description string `json:"description" binding:"required"`
	FigmaURL    string `json:"figmaUrl"`
}

type PreviewResponse struct {
	RequestID string                `json:"requestId"`
	Files     []types.GeneratedFile `json:"files"`
}

// --- API Handlers ---

// POST /convert/generate
// Runs the full flow: prompt the model, parse its reply into files, and
// return a zip download with the project scaffolding injected.
func (h *APIHandler) GenerateArchive(c *gin.Context) {
	requestID, files, ok := h.generateAndParse(c)
	if !ok {
		return
	}

	archive, err := packager.BuildArchive(files)
	if err != nil {
		log.Printf("Error building archive for request %s: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to package generated code"})
		return
	}

	if h.exporter != nil && h.exporter.Enabled() {
		if dir, err := h.exporter.WriteProject(requestID, files.AsMap()); err != nil {
			log.Printf("WARN: Failed to export project for request %s: %v", requestID, err)
		} else {
			log.Printf("Exported project for request %s to %s", requestID, dir)
		}
	}

	log.Printf("Request %s: returning archive with %d generated files", requestID, files.Len())
	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", packager.ArchiveFileName),
	}
	c.DataFromReader(http.StatusOK, archive.Size(), "application/zip", archive, extraHeaders)
}

// POST /convert/preview
// Same generation flow, but returns the parsed files as JSON instead of an
// archive so a frontend can show the code before offering the download.
func (h *APIHandler) PreviewFiles(c *gin.Context) {
	requestID, files, ok := h.generateAndParse(c)
	if !ok {
		return
	}

	listing := make([]types.GeneratedFile, 0, files.Len())
	for _, path := range files.Paths() {
		content, _ := files.Get(path)
		listing = append(listing, types.GeneratedFile{
			Filename: path,
			Type:     utils.DetermineFileType(path),
			Content:  content,
		})
	}

	log.Printf("Request %s: returning preview with %d generated files", requestID, len(listing))
	c.JSON(http.StatusOK, PreviewResponse{RequestID: requestID, Files: listing})
}

// generateAndParse runs validation, the gateway call, and marker parsing.
// On failure it writes the error response and returns ok=false.
func (h *APIHandler) generateAndParse(c *gin.Context) (string, *packager.FileSet, bool) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return "", nil, false
	}

	if h.generator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service is not configured with a DeepSeek API key"})
		return "", nil, false
	}

	requestID := uuid.New().String()
	log.Printf("Request %s: received conversion request (figma url set: %t)", requestID, req.FigmaURL != "")

	designName := h.resolveDesignName(c.Request.Context(), requestID, req.FigmaURL)

	raw, err := h.generator.GenerateReactCode(c.Request.Context(), req.Description, req.FigmaURL, designName)
	if err != nil {
		log.Printf("Error generating code for request %s: %v", requestID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate code. Please try again."})
		return "", nil, false
	}

	files := packager.ParseFileBlocks(raw)
	if files.Len() == 0 {
		// Soft failure: no recognizable markers in the reply. The caller
		// still gets the scaffolding-only result.
		log.Printf("WARN: Request %s: no file markers found in model reply (%d bytes)", requestID, len(raw))
	}

	return requestID, files, true
}

// resolveDesignName enriches the prompt with the design's name from the Figma
// API. Best effort: any failure falls back to the bare URL.
func (h *APIHandler) resolveDesignName(ctx context.Context, requestID, figmaURL string) string {
	if figmaURL == "" || h.figmaClient == nil {
		return ""
	}
	fileKey := figma.ExtractFileKey(figmaURL)
	if fileKey == "" {
		log.Printf("Request %s: could not extract a file key from figma url", requestID)
		return ""
	}
	meta, err := h.figmaClient.GetFileMeta(ctx, fileKey)
	if err != nil {
		log.Printf("WARN: Request %s: figma metadata lookup failed: %v", requestID, err)
		return ""
	}
	return meta.Name
}
