package postgres

import (
	"github.com/yourusername/school-api/internal/domain/entity"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
	"gorm.io/gorm"
)

// StudentRepo implements repository.StudentRepository.
type StudentRepo struct {
	db *gorm.DB
}

// NewStudentRepo creates a new roster repository.
func NewStudentRepo(db *gorm.DB) *StudentRepo {
	return &StudentRepo{db: db}
}

// Create persists a roster entry.
func (r *StudentRepo) Create(student *entity.Student) error {
	return r.db.Create(student).Error
}

// List returns roster entries ordered by roll number.
func (r *StudentRepo) List(division, year string) ([]entity.Student, error) {
	query := r.db.Model(&entity.Student{})
	if division != "" {
		query = query.Where("division = ?", division)
	}
	if year != "" {
		query = query.Where("year = ?", year)
	}

	var students []entity.Student
	err := query.Order("roll_number").Find(&students).Error
	return students, err
}

// Delete removes a roster entry.
func (r *StudentRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Student{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
