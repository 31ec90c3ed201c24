package postgres

import (
	"github.com/yourusername/school-api/internal/domain/entity"
	"gorm.io/gorm"
)

// SupportMessageRepo implements repository.SupportMessageRepository.
type SupportMessageRepo struct {
	db *gorm.DB
}

// NewSupportMessageRepo creates a new support message repository.
func NewSupportMessageRepo(db *gorm.DB) *SupportMessageRepo {
	return &SupportMessageRepo{db: db}
}

// Create persists one chat exchange.
func (r *SupportMessageRepo) Create(msg *entity.SupportMessage) error {
	return r.db.Create(msg).Error
}

// List returns the most recent exchanges, newest first.
func (r *SupportMessageRepo) List(limit int) ([]entity.SupportMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var msgs []entity.SupportMessage
	err := r.db.Order("created_at DESC").Limit(limit).Find(&msgs).Error
	return msgs, err
}
