package service

import (
	"fmt"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
)

// StudentService manages the class roster used to pre-fill attendance
// sheets.
type StudentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) (*StudentService, error) {
	if studentRepo == nil {
		return nil, fmt.Errorf("student repository is required")
	}
	return &StudentService{studentRepo: studentRepo}, nil
}

// Add registers a roster entry.
func (s *StudentService) Add(student *entity.Student) error {
	if student.StudentName == "" || student.Division == "" {
		return fmt.Errorf("%w: student_name and division are required", apperrors.ErrValidation)
	}
	return s.studentRepo.Create(student)
}

// List returns roster entries, optionally narrowed to a division and
// year.
func (s *StudentService) List(division, year string) ([]entity.Student, error) {
	return s.studentRepo.List(division, year)
}

// Remove deletes a roster entry.
func (s *StudentService) Remove(id uint) error {
	return s.studentRepo.Delete(id)
}
