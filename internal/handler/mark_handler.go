package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
	"github.com/yourusername/school-api/internal/service"
)

// MarkHandler serves mark sheet CRUD, bulk clears and the Excel
// export.
type MarkHandler struct {
	markService *service.MarkService
}

func NewMarkHandler(markService *service.MarkService) *MarkHandler {
	return &MarkHandler{markService: markService}
}

func markFilterFromQuery(c *gin.Context) (repository.MarkFilter, error) {
	filter := repository.MarkFilter{
		Division: c.Query("division"),
		Exam:     c.Query("exam"),
	}
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return filter, fmt.Errorf("invalid year %q", yearStr)
		}
		filter.Year = year
	}
	return filter, nil
}

// List returns mark rows matching the query filters.
// GET /api/marks/
func (h *MarkHandler) List(c *gin.Context) {
	filter, err := markFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marks, err := h.markService.List(filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[MarkHandler] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load marks"})
		return
	}

	c.JSON(http.StatusOK, marks)
}

// Create stores one mark row.
// POST /api/marks/
func (h *MarkHandler) Create(c *gin.Context) {
	var mark entity.StudentMark
	if err := c.ShouldBindJSON(&mark); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.markService.Create(&mark); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Mark already exists for this roll number, year and exam"})
		default:
			log.Printf("[MarkHandler] create failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save mark"})
		}
		return
	}

	c.JSON(http.StatusCreated, mark)
}

// Update replaces one mark row.
// PUT /api/marks/:id/
func (h *MarkHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var mark entity.StudentMark
	if err := c.ShouldBindJSON(&mark); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	mark.ID = uint(id)

	if err := h.markService.Update(&mark); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Mark not found"})
		default:
			log.Printf("[MarkHandler] update failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update mark"})
		}
		return
	}

	c.JSON(http.StatusOK, mark)
}

// Delete removes one mark row.
// DELETE /api/marks/:id/
func (h *MarkHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := h.markService.Delete(uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mark not found"})
			return
		}
		log.Printf("[MarkHandler] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete mark"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearDivision bulk-deletes one division's marks.
// DELETE /api/marks/clear_division/:division/
func (h *MarkHandler) ClearDivision(c *gin.Context) {
	division := c.Param("division")
	if !service.ValidDivision(division) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid division"})
		return
	}

	year := 0
	if yearStr := c.Query("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		year = y
	}
	exam := c.Query("exam")

	deleted, err := h.markService.ClearDivision(division, year, exam)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[MarkHandler] clear division failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear marks"})
		return
	}

	message := fmt.Sprintf("%d marks cleared for division %s", deleted, division)
	if exam != "" {
		message += fmt.Sprintf(", %s", exam)
	}
	if year != 0 {
		message += fmt.Sprintf(", %d", year)
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ClearAll removes every mark row.
// DELETE /api/marks/clear_all/
func (h *MarkHandler) ClearAll(c *gin.Context) {
	deleted, err := h.markService.ClearAll()
	if err != nil {
		log.Printf("[MarkHandler] clear all failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear marks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("All marks cleared (%d records deleted)", deleted)})
}

// Export streams the filtered mark sheet as an Excel workbook.
// GET /api/marks/export/
func (h *MarkHandler) Export(c *gin.Context) {
	filter, err := markFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marks, err := h.markService.List(filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[MarkHandler] export list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load marks"})
		return
	}

	filename := "marks"
	if filter.Division != "" {
		filename = "marks_" + filter.Division
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Marks"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[MarkHandler] stream writer failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{
		"Roll No", "Student Name", "Division", "Year", "Exam",
		"Maths", "Physics", "Chemistry", "English", "Malayalam",
		"SS", "ED", "Workshop", "Eye", "GE", "Trade Theory",
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[MarkHandler] header row failed: %v", err)
	}

	for i, m := range marks {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{
			sanitizeForExcel(m.RollNo),
			sanitizeForExcel(m.StudentName),
			m.Division,
			m.Year,
			m.Exam,
			scoreCell(m.Maths),
			scoreCell(m.Physics),
			scoreCell(m.Chemistry),
			scoreCell(m.English),
			scoreCell(m.Malayalam),
			scoreCell(m.SS),
			scoreCell(m.ED),
			scoreCell(m.Workshop),
			scoreCell(m.Eye),
			scoreCell(m.GE),
			scoreCell(m.TradeTheory),
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[MarkHandler] row %d failed: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[MarkHandler] flush failed: %v", err)
	}
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[MarkHandler] write failed: %v", err)
	}
}

// scoreCell maps an absent subject score to an empty cell.
func scoreCell(score *int) interface{} {
	if score == nil {
		return ""
	}
	return *score
}

// sanitizeForExcel guards against formula injection in spreadsheet
// cells.
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
