package repository

import (
	"github.com/yourusername/school-api/internal/domain/entity"
)

// UserRepository defines persistence operations for staff accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// GetAdminByEmail resolves an account by email, restricted to the
	// admin role. Password-reset flows must never match plain staff.
	GetAdminByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	UpdatePassword(userID uint, newPassword string) error
}
