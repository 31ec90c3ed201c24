package postgres

import (
	"github.com/yourusername/school-api/internal/domain/entity"
	"gorm.io/gorm"
)

// AdmissionRepo implements repository.AdmissionRepository.
type AdmissionRepo struct {
	db *gorm.DB
}

// NewAdmissionRepo creates a new admission repository.
func NewAdmissionRepo(db *gorm.DB) *AdmissionRepo {
	return &AdmissionRepo{db: db}
}

// Create persists an intake form submission.
func (r *AdmissionRepo) Create(admission *entity.Admission) error {
	return r.db.Create(admission).Error
}

// List returns all submissions, newest first.
func (r *AdmissionRepo) List() ([]entity.Admission, error) {
	var admissions []entity.Admission
	err := r.db.Order("id DESC").Find(&admissions).Error
	return admissions, err
}
