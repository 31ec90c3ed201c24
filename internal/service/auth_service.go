package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
	"github.com/yourusername/school-api/pkg/auth"
)

// TokenPair is returned on a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// AuthService authenticates admins and manages token lifecycles.
type AuthService struct {
	userRepo        repository.UserRepository
	tokenRepo       repository.RefreshTokenRepository
	jwtService      *auth.JWTService
	refreshLifetime time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.RefreshTokenRepository,
	jwtService *auth.JWTService,
	refreshLifetime time.Duration,
) (*AuthService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if tokenRepo == nil {
		return nil, fmt.Errorf("refresh token repository is required")
	}
	if jwtService == nil {
		return nil, fmt.Errorf("jwt service is required")
	}
	if refreshLifetime <= 0 {
		refreshLifetime = 7 * 24 * time.Hour
	}

	return &AuthService{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		jwtService:      jwtService,
		refreshLifetime: refreshLifetime,
	}, nil
}

// LoginAdmin checks credentials and issues a token pair. Only accounts
// with the admin role may log in to the admin panel.
func (s *AuthService) LoginAdmin(username, password string) (*TokenPair, *entity.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !user.CheckPassword(password) {
		log.Printf("[AuthService] failed login attempt for user ID=%d", user.ID)
		return nil, nil, ErrInvalidCredentials
	}

	if !user.IsAdmin() {
		return nil, nil, ErrNotAdmin
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	log.Printf("[AuthService] user ID=%d (%s) logged in", user.ID, user.Username)
	return pair, user, nil
}

// Refresh exchanges a stored refresh token for a fresh pair. The old
// refresh token is rotated out.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	stored, err := s.tokenRepo.GetByToken(refreshToken)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if stored.IsExpired(time.Now()) {
		_ = s.tokenRepo.Delete(stored.Token)
		return nil, apperrors.ErrExpiredToken
	}

	user, err := s.userRepo.GetByID(stored.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Delete(stored.Token); err != nil {
		log.Printf("[AuthService] failed to rotate refresh token for user ID=%d: %v", user.ID, err)
	}

	return s.issueTokens(user)
}

// CleanupExpiredTokens removes refresh tokens past their expiry. Run
// periodically from main.
func (s *AuthService) CleanupExpiredTokens() error {
	removed, err := s.tokenRepo.DeleteExpired()
	if err != nil {
		return fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	if removed > 0 {
		log.Printf("[AuthService] removed %d expired refresh tokens", removed)
	}
	return nil
}

// Logout revokes a single refresh token.
func (s *AuthService) Logout(refreshToken string) error {
	return s.tokenRepo.Delete(refreshToken)
}

// GetUserByID returns the account behind an access token's subject.
func (s *AuthService) GetUserByID(userID uint) (*entity.User, error) {
	return s.userRepo.GetByID(userID)
}

func (s *AuthService) issueTokens(user *entity.User) (*TokenPair, error) {
	accessToken, err := s.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthService] token generation failed for user ID=%d: %v", user.ID, err)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh := &entity.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.refreshLifetime),
	}
	if err := s.tokenRepo.Create(refresh); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
	}, nil
}
