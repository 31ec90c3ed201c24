package postgres

import (
	"errors"
	"fmt"

	"github.com/yourusername/school-api/internal/domain/entity"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
	"gorm.io/gorm"
)

// PasswordResetOTPRepo implements repository.PasswordResetOTPRepository.
type PasswordResetOTPRepo struct {
	db *gorm.DB
}

// NewPasswordResetOTPRepo creates a new OTP repository.
func NewPasswordResetOTPRepo(db *gorm.DB) *PasswordResetOTPRepo {
	return &PasswordResetOTPRepo{db: db}
}

// Create persists a freshly issued code.
func (r *PasswordResetOTPRepo) Create(otp *entity.PasswordResetOTP) error {
	return r.db.Create(otp).Error
}

// GetLatestIssued returns the newest issued record matching the code.
// Expiry is not filtered here; the service applies it so expired
// records surface as Expired rather than InvalidCode.
func (r *PasswordResetOTPRepo) GetLatestIssued(userID uint, code string) (*entity.PasswordResetOTP, error) {
	var otp entity.PasswordResetOTP
	err := r.db.
		Where("user_id = ? AND code = ? AND status = ?", userID, code, entity.OTPStatusIssued).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest issued otp: %w", err)
	}
	return &otp, nil
}

// MarkVerified moves a record from issued to verified.
func (r *PasswordResetOTPRepo) MarkVerified(id uint) error {
	return r.db.Model(&entity.PasswordResetOTP{}).
		Where("id = ?", id).
		Update("status", entity.OTPStatusVerified).Error
}

// HasVerified reports whether the user has any verified record.
func (r *PasswordResetOTPRepo) HasVerified(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entity.PasswordResetOTP{}).
		Where("user_id = ? AND status = ?", userID, entity.OTPStatusVerified).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByUserID removes every record for the user.
func (r *PasswordResetOTPRepo) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&entity.PasswordResetOTP{}).Error
}
