package repository

import "github.com/yourusername/school-api/internal/domain/entity"

// AdmissionRepository defines persistence operations for intake forms.
type AdmissionRepository interface {
	Create(admission *entity.Admission) error
	// List returns all submissions, newest first.
	List() ([]entity.Admission, error)
}
