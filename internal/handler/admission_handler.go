package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
	"github.com/yourusername/school-api/internal/service"
)

// AdmissionHandler serves the public intake form and the admin-facing
// listing.
type AdmissionHandler struct {
	admissionService *service.AdmissionService
}

func NewAdmissionHandler(admissionService *service.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{admissionService: admissionService}
}

type admissionRequest struct {
	PhoneNum    string `json:"phone_num" binding:"required"`
	StudentName string `json:"student_name" binding:"required"`
	Address     string `json:"address" binding:"required"`
}

// Submit accepts a new intake form.
// POST /api/admission/
func (h *AdmissionHandler) Submit(c *gin.Context) {
	var req admissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	if _, err := h.admissionService.Submit(req.PhoneNum, req.StudentName, req.Address); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}
		log.Printf("[AdmissionHandler] submit failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit admission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admission submitted successfully!"})
}

// List returns all submissions, newest first.
// GET /api/admissiondata/
func (h *AdmissionHandler) List(c *gin.Context) {
	admissions, err := h.admissionService.List()
	if err != nil {
		log.Printf("[AdmissionHandler] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load admissions"})
		return
	}

	c.JSON(http.StatusOK, admissions)
}
