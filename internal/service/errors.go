package service

import "errors"

// Password reset and auth flow errors used by handlers for stable
// status-code mapping.
var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrNotAdmin           = errors.New("not_admin")
	ErrInvalidOTP         = errors.New("invalid_otp")
	ErrOTPExpired         = errors.New("otp_expired")
	ErrOTPNotVerified     = errors.New("otp_not_verified")
	ErrEmailDispatch      = errors.New("email_dispatch_failed")
	ErrChatNotConfigured  = errors.New("chat_not_configured")
)
