package repository

import "github.com/yourusername/school-api/internal/domain/entity"

// StudentRepository defines persistence operations for the class roster.
type StudentRepository interface {
	Create(student *entity.Student) error
	// List returns roster entries ordered by roll number, optionally
	// narrowed to a division and year.
	List(division, year string) ([]entity.Student, error)
	Delete(id uint) error
}
