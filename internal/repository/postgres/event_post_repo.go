package postgres

import (
	"errors"

	"github.com/yourusername/school-api/internal/domain/entity"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
	"gorm.io/gorm"
)

// EventPostRepo implements repository.EventPostRepository.
type EventPostRepo struct {
	db *gorm.DB
}

// NewEventPostRepo creates a new event post repository.
func NewEventPostRepo(db *gorm.DB) *EventPostRepo {
	return &EventPostRepo{db: db}
}

// Create persists a new post.
func (r *EventPostRepo) Create(post *entity.EventPost) error {
	return r.db.Create(post).Error
}

// GetByID returns a single post.
func (r *EventPostRepo) GetByID(id uint) (*entity.EventPost, error) {
	var post entity.EventPost
	err := r.db.First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List returns all posts, newest first.
func (r *EventPostRepo) List() ([]entity.EventPost, error) {
	var posts []entity.EventPost
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// Delete removes a post.
func (r *EventPostRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.EventPost{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
