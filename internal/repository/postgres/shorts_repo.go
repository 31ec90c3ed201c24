package postgres

import (
	"errors"

	"github.com/yourusername/school-api/internal/domain/entity"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
	"gorm.io/gorm"
)

// ShortsRepo implements repository.ShortsRepository.
type ShortsRepo struct {
	db *gorm.DB
}

// NewShortsRepo creates a new shorts repository.
func NewShortsRepo(db *gorm.DB) *ShortsRepo {
	return &ShortsRepo{db: db}
}

// Create persists a new short.
func (r *ShortsRepo) Create(short *entity.Short) error {
	return r.db.Create(short).Error
}

// GetByID returns a single short.
func (r *ShortsRepo) GetByID(id uint) (*entity.Short, error) {
	var short entity.Short
	err := r.db.First(&short, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &short, nil
}

// List returns all shorts, newest first.
func (r *ShortsRepo) List() ([]entity.Short, error) {
	var shorts []entity.Short
	err := r.db.Order("created_at DESC").Find(&shorts).Error
	return shorts, err
}

// Delete removes a short.
func (r *ShortsRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Short{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
