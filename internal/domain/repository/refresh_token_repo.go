package repository

import "github.com/yourusername/school-api/internal/domain/entity"

// RefreshTokenRepository persists refresh tokens for admin sessions.
type RefreshTokenRepository interface {
	Create(token *entity.RefreshToken) error
	GetByToken(token string) (*entity.RefreshToken, error)
	Delete(token string) error
	DeleteByUserID(userID uint) error
	DeleteExpired() (int64, error)
}
