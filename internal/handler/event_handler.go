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

// maxUploadBytes caps flyer and video uploads at 50 MB.
const maxUploadBytes = 50 * 1024 * 1024

// EventHandler serves event post CRUD.
type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create accepts a multipart form with an optional "file" attachment
// and a "description" field.
// POST /api/posts/
func (h *EventHandler) Create(c *gin.Context) {
	description := c.PostForm("description")

	file, err := c.FormFile("file")
	if err != nil {
		file = nil
	}
	if file == nil && description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file or description is required"})
		return
	}
	if file != nil && file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large (max 50 MB)"})
		return
	}

	post, err := h.eventService.CreatePost(file, description)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[EventHandler] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// List returns all posts, newest first.
// GET /api/posts/
func (h *EventHandler) List(c *gin.Context) {
	posts, err := h.eventService.ListPosts()
	if err != nil {
		log.Printf("[EventHandler] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Get returns one post.
// GET /api/posts/:id/
func (h *EventHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	post, err := h.eventService.GetPost(uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		log.Printf("[EventHandler] get failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete removes a post and its attachment.
// DELETE /api/posts/:id/
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := h.eventService.DeletePost(uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		log.Printf("[EventHandler] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.Status(http.StatusNoContent)
}
