package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
)

// CodeGenerator produces a one-time reset code. Injected so tests can
// use a deterministic generator.
type CodeGenerator func() (string, error)

// GenerateResetCode returns a random six-digit code in [100000, 999999].
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

// PasswordResetService implements the OTP-based admin password reset
// flow: request a code by email, verify it, then set a new password.
type PasswordResetService struct {
	userRepo     repository.UserRepository
	otpRepo      repository.PasswordResetOTPRepository
	tokenRepo    repository.RefreshTokenRepository
	emailService EmailService
	generateCode CodeGenerator
	resetBaseURL string
}

func NewPasswordResetService(
	userRepo repository.UserRepository,
	otpRepo repository.PasswordResetOTPRepository,
	tokenRepo repository.RefreshTokenRepository,
	emailService EmailService,
	resetBaseURL string,
) (*PasswordResetService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if otpRepo == nil {
		return nil, fmt.Errorf("password reset repository is required")
	}
	if emailService == nil {
		return nil, fmt.Errorf("email service is required")
	}

	return &PasswordResetService{
		userRepo:     userRepo,
		otpRepo:      otpRepo,
		tokenRepo:    tokenRepo,
		emailService: emailService,
		generateCode: GenerateResetCode,
		resetBaseURL: resetBaseURL,
	}, nil
}

// SetCodeGenerator replaces the random code source.
func (s *PasswordResetService) SetCodeGenerator(gen CodeGenerator) {
	if gen != nil {
		s.generateCode = gen
	}
}

// RequestOTP emails a fresh one-time code to the admin account behind
// the given address. The code is recorded only after the email has
// been handed off, so a delivery failure never leaves an orphaned
// code that was never seen.
func (s *PasswordResetService) RequestOTP(ctx context.Context, email string) error {
	user, err := s.userRepo.GetAdminByEmail(email)
	if err != nil {
		return err
	}

	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	if err := s.emailService.SendPasswordResetOTP(ctx, user.Email, code); err != nil {
		log.Printf("[PasswordResetService] OTP dispatch failed for user %d: %v", user.ID, err)
		return fmt.Errorf("%w: %v", ErrEmailDispatch, err)
	}

	record := &entity.PasswordResetOTP{
		UserID: user.ID,
		Code:   code,
		Status: entity.OTPStatusIssued,
	}
	if err := s.otpRepo.Create(record); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	return nil
}

// VerifyOTP checks a submitted code against the latest unconsumed code
// for the account and marks it verified on match.
func (s *PasswordResetService) VerifyOTP(ctx context.Context, email, code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrInvalidOTP
	}

	user, err := s.userRepo.GetAdminByEmail(email)
	if err != nil {
		return err
	}

	record, err := s.otpRepo.GetLatestIssued(user.ID, code)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return ErrInvalidOTP
		}
		return err
	}

	if record.IsExpired(time.Now()) {
		return ErrOTPExpired
	}

	if err := s.otpRepo.MarkVerified(record.ID); err != nil {
		return fmt.Errorf("failed to mark code verified: %w", err)
	}
	return nil
}

// ResetPassword sets a new password once a code has been verified for
// the account. All outstanding codes are removed afterwards, and every
// refresh token for the account is revoked.
func (s *PasswordResetService) ResetPassword(ctx context.Context, email, newPassword string) error {
	user, err := s.userRepo.GetAdminByEmail(email)
	if err != nil {
		return err
	}

	verified, err := s.otpRepo.HasVerified(user.ID)
	if err != nil {
		return err
	}
	if !verified {
		return ErrOTPNotVerified
	}

	if err := s.userRepo.UpdatePassword(user.ID, newPassword); err != nil {
		return err
	}

	if err := s.otpRepo.DeleteByUserID(user.ID); err != nil {
		return fmt.Errorf("failed to clear reset codes: %w", err)
	}

	if s.tokenRepo != nil {
		if err := s.tokenRepo.DeleteByUserID(user.ID); err != nil {
			log.Printf("[PasswordResetService] failed to revoke refresh tokens for user %d: %v", user.ID, err)
		}
	}

	return nil
}

// SendResetLink emails the legacy reset-link mail pointing the admin
// at the frontend reset page.
func (s *PasswordResetService) SendResetLink(ctx context.Context, email string) error {
	user, err := s.userRepo.GetAdminByEmail(email)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s?email=%s", s.resetBaseURL, url.QueryEscape(user.Email))
	if err := s.emailService.SendPasswordResetLink(ctx, user.Email, link); err != nil {
		log.Printf("[PasswordResetService] reset link dispatch failed for user %d: %v", user.ID, err)
		return fmt.Errorf("%w: %v", ErrEmailDispatch, err)
	}
	return nil
}
