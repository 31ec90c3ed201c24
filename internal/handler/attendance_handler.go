package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
	"github.com/yourusername/school-api/internal/service"
)

const dateLayout = "2006-01-02"

// AttendanceHandler serves attendance sheets, per-row edits and the
// dashboard summary charts.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	studentService    *service.StudentService
}

func NewAttendanceHandler(attendanceService *service.AttendanceService, studentService *service.StudentService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		studentService:    studentService,
	}
}

type saveAttendanceRequest struct {
	Date     string                    `json:"date" binding:"required"`
	Division string                    `json:"division" binding:"required"`
	Students []service.AttendanceEntry `json:"students" binding:"required,min=1"`
}

// Save records one attendance sheet.
// POST /api/save-attendance/
func (h *AttendanceHandler) Save(c *gin.Context) {
	var req saveAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	if err := h.attendanceService.SaveSheet(date, req.Division, req.Students); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[AttendanceHandler] save failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save attendance"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Attendance saved for %s on %s", req.Division, req.Date),
	})
}

// Get lists attendance rows, optionally filtered by division and date.
// GET /api/get-attendance/
func (h *AttendanceHandler) Get(c *gin.Context) {
	filter := repository.AttendanceFilter{
		Division: c.Query("division"),
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
			return
		}
		filter.Date = &date
	}

	records, err := h.attendanceService.List(filter)
	if err != nil {
		log.Printf("[AttendanceHandler] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendance"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// Summary returns the weekly and monthly chart data.
// GET /api/attendance-summary/
func (h *AttendanceHandler) Summary(c *gin.Context) {
	summary, err := h.attendanceService.Summary(c.Query("division"))
	if err != nil {
		log.Printf("[AttendanceHandler] summary failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

type updateAttendanceRequest struct {
	Date        string `json:"date" binding:"required"`
	Division    string `json:"division" binding:"required"`
	Year        string `json:"year"`
	RollNumber  int    `json:"roll_number"`
	StudentName string `json:"student_name" binding:"required"`
	Status      string `json:"status" binding:"required"`
}

// Update replaces one attendance row.
// PUT /api/attendance/:id/
func (h *AttendanceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var req updateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	record := &entity.Attendance{
		ID:          uint(id),
		Date:        date,
		Division:    req.Division,
		Year:        req.Year,
		RollNumber:  req.RollNumber,
		StudentName: req.StudentName,
		Status:      req.Status,
	}
	if err := h.attendanceService.Update(record); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Attendance record not found"})
		default:
			log.Printf("[AttendanceHandler] update failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attendance"})
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

// Delete removes one attendance row.
// DELETE /api/attendance/:id/
func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := h.attendanceService.Delete(uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attendance record not found"})
			return
		}
		log.Printf("[AttendanceHandler] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete attendance"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListStudents returns the roster used to pre-fill a sheet.
// GET /api/students/
func (h *AttendanceHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.List(c.Query("division"), c.Query("year"))
	if err != nil {
		log.Printf("[AttendanceHandler] roster list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load students"})
		return
	}

	c.JSON(http.StatusOK, students)
}

// AddStudent registers one roster entry.
// POST /api/students/
func (h *AttendanceHandler) AddStudent(c *gin.Context) {
	var student entity.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	if err := h.studentService.Add(&student); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[AttendanceHandler] roster add failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add student"})
		return
	}

	c.JSON(http.StatusCreated, student)
}

// RemoveStudent deletes one roster entry.
// DELETE /api/students/:id/
func (h *AttendanceHandler) RemoveStudent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := h.studentService.Remove(uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
			return
		}
		log.Printf("[AttendanceHandler] roster delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete student"})
		return
	}

	c.Status(http.StatusNoContent)
}
