package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
	"github.com/yourusername/school-api/internal/service"
)

// ShortsHandler serves short-form video CRUD.
type ShortsHandler struct {
	shortsService *service.ShortsService
}

func NewShortsHandler(shortsService *service.ShortsService) *ShortsHandler {
	return &ShortsHandler{shortsService: shortsService}
}

// Create accepts a multipart form with a "video" file, a "title" and
// an optional "caption".
// POST /api/shorts/
func (h *ShortsHandler) Create(c *gin.Context) {
	file, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video file is required"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large (max 50 MB)"})
		return
	}

	title := c.PostForm("title")
	caption := c.PostForm("caption")

	short, err := h.shortsService.CreateShort(file, title, caption)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[ShortsHandler] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create short"})
		return
	}

	c.JSON(http.StatusCreated, short)
}

// List returns all shorts, newest first.
// GET /api/shorts/
func (h *ShortsHandler) List(c *gin.Context) {
	shorts, err := h.shortsService.ListShorts()
	if err != nil {
		log.Printf("[ShortsHandler] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shorts"})
		return
	}

	c.JSON(http.StatusOK, shorts)
}

// Get returns one short.
// GET /api/shorts/:id/
func (h *ShortsHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	short, err := h.shortsService.GetShort(uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Short not found"})
			return
		}
		log.Printf("[ShortsHandler] get failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load short"})
		return
	}

	c.JSON(http.StatusOK, short)
}

// Delete removes a short and its video file.
// DELETE /api/shorts/:id/
func (h *ShortsHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := h.shortsService.DeleteShort(uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Short not found"})
			return
		}
		log.Printf("[ShortsHandler] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete short"})
		return
	}

	c.Status(http.StatusNoContent)
}
