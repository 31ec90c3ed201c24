package service

import (
	"fmt"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
)

// AdmissionService handles prospective-student intake forms.
type AdmissionService struct {
	admissionRepo repository.AdmissionRepository
}

func NewAdmissionService(admissionRepo repository.AdmissionRepository) (*AdmissionService, error) {
	if admissionRepo == nil {
		return nil, fmt.Errorf("admission repository is required")
	}
	return &AdmissionService{admissionRepo: admissionRepo}, nil
}

// Submit stores a new intake form. All three fields are required.
func (s *AdmissionService) Submit(phoneNum, studentName, address string) (*entity.Admission, error) {
	if phoneNum == "" || studentName == "" || address == "" {
		return nil, fmt.Errorf("%w: all fields are required", apperrors.ErrValidation)
	}

	admission := &entity.Admission{
		PhoneNum:    phoneNum,
		StudentName: studentName,
		Address:     address,
	}
	if err := s.admissionRepo.Create(admission); err != nil {
		return nil, fmt.Errorf("failed to store admission: %w", err)
	}
	return admission, nil
}

// List returns all submissions, newest first.
func (s *AdmissionService) List() ([]entity.Admission, error) {
	return s.admissionRepo.List()
}
