package repository

import "github.com/yourusername/school-api/internal/domain/entity"

// EventPostRepository defines persistence operations for event posts.
type EventPostRepository interface {
	Create(post *entity.EventPost) error
	GetByID(id uint) (*entity.EventPost, error)
	// List returns all posts, newest first.
	List() ([]entity.EventPost, error)
	Delete(id uint) error
}
