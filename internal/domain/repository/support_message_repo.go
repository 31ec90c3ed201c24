package repository

import "github.com/yourusername/school-api/internal/domain/entity"

// SupportMessageRepository persists AI support chat exchanges.
type SupportMessageRepository interface {
	Create(msg *entity.SupportMessage) error
	List(limit int) ([]entity.SupportMessage, error)
}
