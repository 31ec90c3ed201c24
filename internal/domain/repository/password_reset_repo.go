package repository

import "github.com/yourusername/school-api/internal/domain/entity"

// PasswordResetOTPRepository persists one-time password-reset codes.
type PasswordResetOTPRepository interface {
	Create(otp *entity.PasswordResetOTP) error
	// GetLatestIssued returns the most recently created record for the
	// user that is still in the issued state and carries the given code.
	GetLatestIssued(userID uint, code string) (*entity.PasswordResetOTP, error)
	MarkVerified(id uint) error
	// HasVerified reports whether any verified record exists for the user.
	HasVerified(userID uint) (bool, error)
	// DeleteByUserID removes every record for the user, consumed or stale.
	DeleteByUserID(userID uint) error
}
