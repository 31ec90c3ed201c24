package service

import (
	"fmt"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
)

// Divisions accepted for bulk mark operations.
var validDivisions = []string{"10A", "10B", "9A", "9B", "8A", "8B"}

// ValidDivision reports whether the division is one of the known ones.
func ValidDivision(division string) bool {
	for _, d := range validDivisions {
		if d == division {
			return true
		}
	}
	return false
}

// MarkService manages per-term mark sheets.
type MarkService struct {
	markRepo repository.StudentMarkRepository
}

func NewMarkService(markRepo repository.StudentMarkRepository) (*MarkService, error) {
	if markRepo == nil {
		return nil, fmt.Errorf("mark repository is required")
	}
	return &MarkService{markRepo: markRepo}, nil
}

// Create stores a new mark sheet row. The same roll number may appear
// once per division, year and exam.
func (s *MarkService) Create(mark *entity.StudentMark) error {
	if err := validateMark(mark); err != nil {
		return err
	}
	return s.markRepo.Create(mark)
}

// List returns mark rows matching the filter, ordered by roll number.
func (s *MarkService) List(filter repository.MarkFilter) ([]entity.StudentMark, error) {
	if filter.Exam != "" && !entity.ValidExam(filter.Exam) {
		return nil, fmt.Errorf("%w: invalid exam %q", apperrors.ErrValidation, filter.Exam)
	}
	return s.markRepo.List(filter)
}

// GetByID returns a single mark row.
func (s *MarkService) GetByID(id uint) (*entity.StudentMark, error) {
	return s.markRepo.GetByID(id)
}

// Update replaces a mark sheet row.
func (s *MarkService) Update(mark *entity.StudentMark) error {
	if err := validateMark(mark); err != nil {
		return err
	}
	return s.markRepo.Update(mark)
}

// Delete removes a single mark row.
func (s *MarkService) Delete(id uint) error {
	return s.markRepo.Delete(id)
}

// ClearDivision bulk-deletes a division's marks, optionally narrowed
// by year and exam. Returns the number of rows removed.
func (s *MarkService) ClearDivision(division string, year int, exam string) (int64, error) {
	if !ValidDivision(division) {
		return 0, fmt.Errorf("%w: invalid division %q", apperrors.ErrValidation, division)
	}
	if exam != "" && !entity.ValidExam(exam) {
		return 0, fmt.Errorf("%w: invalid exam %q", apperrors.ErrValidation, exam)
	}
	return s.markRepo.DeleteByFilter(repository.MarkFilter{
		Division: division,
		Year:     year,
		Exam:     exam,
	})
}

// ClearAll removes every mark row and returns the count.
func (s *MarkService) ClearAll() (int64, error) {
	return s.markRepo.DeleteAll()
}

func validateMark(mark *entity.StudentMark) error {
	if mark.Division == "" || mark.RollNo == "" || mark.StudentName == "" {
		return fmt.Errorf("%w: division, roll_no and student_name are required", apperrors.ErrValidation)
	}
	if mark.Exam != "" && !entity.ValidExam(mark.Exam) {
		return fmt.Errorf("%w: invalid exam %q", apperrors.ErrValidation, mark.Exam)
	}
	return nil
}
