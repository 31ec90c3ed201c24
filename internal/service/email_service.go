package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// EmailService sends transactional emails.
type EmailService interface {
	// SendPasswordResetOTP delivers a one-time code. The message must
	// state the 10 minute expiry.
	SendPasswordResetOTP(ctx context.Context, toEmail, code string) error
	// SendPasswordResetLink delivers the legacy reset-link mail.
	SendPasswordResetLink(ctx context.Context, toEmail, link string) error
}

// NoopEmailService logs instead of sending. Used in development when
// no Resend API key is configured.
type NoopEmailService struct{}

func (s *NoopEmailService) SendPasswordResetOTP(ctx context.Context, toEmail, code string) error {
	log.Printf("[EmailService] noop send reset OTP to=%s", toEmail)
	return nil
}

func (s *NoopEmailService) SendPasswordResetLink(ctx context.Context, toEmail, link string) error {
	log.Printf("[EmailService] noop send reset link to=%s", toEmail)
	return nil
}

// ResendEmailService sends emails via the Resend REST API.
type ResendEmailService struct {
	from   string
	client *resend.Client
}

// NewResendEmailService creates the Resend-backed sender.
func NewResendEmailService(apiKey, from string) (*ResendEmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from is required")
	}
	return &ResendEmailService{
		from:   from,
		client: resend.NewClient(apiKey),
	}, nil
}

// SendPasswordResetOTP delivers a one-time password-reset code.
func (s *ResendEmailService) SendPasswordResetOTP(ctx context.Context, toEmail, code string) error {
	if toEmail == "" || code == "" {
		return fmt.Errorf("toEmail and code are required")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: fmt.Sprintf("Password Reset OTP - %s", time.Now().Format("15:04:05")),
		Text:    fmt.Sprintf("Your OTP for password reset is: %s\n\nThis OTP will expire in 10 minutes.", code),
		Html:    fmt.Sprintf("<p>Your OTP for password reset is <strong>%s</strong>.</p><p>This OTP will expire in 10 minutes.</p>", code),
	}

	return s.send(ctx, params)
}

// SendPasswordResetLink delivers the legacy reset-link mail.
func (s *ResendEmailService) SendPasswordResetLink(ctx context.Context, toEmail, link string) error {
	if toEmail == "" || link == "" {
		return fmt.Errorf("toEmail and link are required")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: "Admin Password Reset",
		Text:    fmt.Sprintf("Click the link to reset your password: %s", link),
		Html:    fmt.Sprintf(`<p>Click the link to reset your password: <a href="%s">%s</a></p>`, link, link),
	}

	return s.send(ctx, params)
}

func (s *ResendEmailService) send(ctx context.Context, params *resend.SendEmailRequest) error {
	options := &resend.SendEmailOptions{}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		_, err := s.client.Emails.SendWithOptions(ctx, params, options)
		if err == nil {
			return nil
		}
		lastErr = err

		if wait, ok := resendRetryDelay(err, attempt); ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
				continue
			}
		}

		return fmt.Errorf("resend send failed: %w", err)
	}

	return fmt.Errorf("resend send failed after retries: %w", lastErr)
}

// resendRetryDelay decides whether an error is transient and how long
// to back off before the next attempt.
func resendRetryDelay(err error, attempt int) (time.Duration, bool) {
	var rateLimitErr *resend.RateLimitError
	if errors.As(err, &rateLimitErr) {
		if seconds, convErr := strconv.Atoi(strings.TrimSpace(rateLimitErr.RetryAfter)); convErr == nil && seconds > 0 {
			if seconds > 30 {
				seconds = 30
			}
			return time.Duration(seconds) * time.Second, true
		}
		return time.Duration(attempt+1) * time.Second, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "temporar") {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	return 0, false
}
