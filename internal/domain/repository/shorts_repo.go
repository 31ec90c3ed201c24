package repository

import "github.com/yourusername/school-api/internal/domain/entity"

// ShortsRepository defines persistence operations for short videos.
type ShortsRepository interface {
	Create(short *entity.Short) error
	GetByID(id uint) (*entity.Short, error)
	// List returns all shorts, newest first.
	List() ([]entity.Short, error)
	Delete(id uint) error
}
