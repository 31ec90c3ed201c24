package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordResetOTP_IsExpired(t *testing.T) {
	issued := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	otp := &PasswordResetOTP{Code: "482913", Status: OTPStatusIssued, CreatedAt: issued}

	assert.False(t, otp.IsExpired(issued))
	assert.False(t, otp.IsExpired(issued.Add(1*time.Minute)))
	assert.False(t, otp.IsExpired(issued.Add(10*time.Minute)))
	assert.True(t, otp.IsExpired(issued.Add(10*time.Minute+1*time.Second)))
	assert.True(t, otp.IsExpired(issued.Add(11*time.Minute)))
}

func TestPasswordResetOTP_IsVerified(t *testing.T) {
	otp := &PasswordResetOTP{Status: OTPStatusIssued}
	assert.False(t, otp.IsVerified())

	otp.Status = OTPStatusVerified
	assert.True(t, otp.IsVerified())

	// Expiry does not change the verified state.
	otp.CreatedAt = time.Now().Add(-time.Hour)
	assert.True(t, otp.IsVerified())
}
