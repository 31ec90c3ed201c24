package entity

import "time"

// PasswordResetOTP lifecycle states. The state is stored explicitly
// instead of being inferred from a boolean flag: "issued" records are
// candidates for verification, "verified" records authorize a password
// reset. Consumption is the deletion of all rows for the user.
const (
	OTPStatusIssued   = "issued"
	OTPStatusVerified = "verified"
)

// OTPTTL is how long an issued code stays valid. Expiry is evaluated
// lazily at verification time; there is no background sweep.
const OTPTTL = 10 * time.Minute

// PasswordResetOTP is one 6-digit code issued to an admin for a
// password reset. Rows cascade-delete with their user.
type PasswordResetOTP struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Code      string    `gorm:"size:6;not null" json:"-"`
	Status    string    `gorm:"size:16;not null;default:'issued'" json:"status"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName defines the table name for GORM.
func (PasswordResetOTP) TableName() string {
	return "password_reset_otps"
}

// IsExpired reports whether the code is past its TTL at the given time.
func (o *PasswordResetOTP) IsExpired(now time.Time) bool {
	return now.After(o.CreatedAt.Add(OTPTTL))
}

// IsVerified reports whether the code has passed verification.
func (o *PasswordResetOTP) IsVerified() bool {
	return o.Status == OTPStatusVerified
}
