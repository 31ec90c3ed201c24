package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/school-api/internal/domain/entity"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
	"github.com/yourusername/school-api/pkg/auth"
)

func newAuthService(t *testing.T, userRepo *MockUserRepository, tokenRepo *MockRefreshTokenRepository) *AuthService {
	t.Helper()
	jwtService, err := auth.NewJWTService("test-secret-key", 1)
	require.NoError(t, err)

	svc, err := NewAuthService(userRepo, tokenRepo, jwtService, 24*time.Hour)
	require.NoError(t, err)
	return svc
}

func hashedPassword(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginAdmin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newAuthService(t, userRepo, tokenRepo)

	admin := &entity.User{
		ID:       1,
		Username: "admin",
		Email:    "admin@x.com",
		Password: hashedPassword(t, "SecretPass1!"),
		Role:     entity.RoleAdmin,
	}
	userRepo.On("GetByUsername", "admin").Return(admin, nil)
	tokenRepo.On("Create", mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	pair, user, err := svc.LoginAdmin("admin", "SecretPass1!")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, uint(1), user.ID)
}

func TestLoginAdmin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newAuthService(t, userRepo, tokenRepo)

	admin := &entity.User{
		ID:       1,
		Username: "admin",
		Password: hashedPassword(t, "SecretPass1!"),
		Role:     entity.RoleAdmin,
	}
	userRepo.On("GetByUsername", "admin").Return(admin, nil)

	_, _, err := svc.LoginAdmin("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokenRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLoginAdmin_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newAuthService(t, userRepo, new(MockRefreshTokenRepository))

	userRepo.On("GetByUsername", "ghost").Return(nil, apperrors.ErrNotFound)

	_, _, err := svc.LoginAdmin("ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginAdmin_StaffRejected(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newAuthService(t, userRepo, new(MockRefreshTokenRepository))

	staff := &entity.User{
		ID:       2,
		Username: "teacher",
		Password: hashedPassword(t, "SecretPass1!"),
		Role:     entity.RoleStaff,
	}
	userRepo.On("GetByUsername", "teacher").Return(staff, nil)

	_, _, err := svc.LoginAdmin("teacher", "SecretPass1!")
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestRefresh_RotatesToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newAuthService(t, userRepo, tokenRepo)

	admin := &entity.User{ID: 1, Username: "admin", Role: entity.RoleAdmin}
	stored := &entity.RefreshToken{
		UserID:    1,
		Token:     "old-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	tokenRepo.On("GetByToken", "old-token").Return(stored, nil)
	userRepo.On("GetByID", uint(1)).Return(admin, nil)
	tokenRepo.On("Delete", "old-token").Return(nil)
	tokenRepo.On("Create", mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	pair, err := svc.Refresh("old-token")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEqual(t, "old-token", pair.RefreshToken)
	tokenRepo.AssertCalled(t, "Delete", "old-token")
}

func TestRefresh_Expired(t *testing.T) {
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newAuthService(t, new(MockUserRepository), tokenRepo)

	stored := &entity.RefreshToken{
		UserID:    1,
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	tokenRepo.On("GetByToken", "stale-token").Return(stored, nil)
	tokenRepo.On("Delete", "stale-token").Return(nil)

	_, err := svc.Refresh("stale-token")
	assert.ErrorIs(t, err, apperrors.ErrExpiredToken)
}

func TestRefresh_UnknownToken(t *testing.T) {
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newAuthService(t, new(MockUserRepository), tokenRepo)

	tokenRepo.On("GetByToken", "missing").Return(nil, apperrors.ErrNotFound)

	_, err := svc.Refresh("missing")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestCleanupExpiredTokens(t *testing.T) {
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newAuthService(t, new(MockUserRepository), tokenRepo)

	tokenRepo.On("DeleteExpired").Return(int64(3), nil)

	err := svc.CleanupExpiredTokens()
	require.NoError(t, err)
	tokenRepo.AssertCalled(t, "DeleteExpired")
}

func TestCleanupExpiredTokens_RepoError(t *testing.T) {
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newAuthService(t, new(MockUserRepository), tokenRepo)

	tokenRepo.On("DeleteExpired").Return(int64(0), errors.New("connection reset"))

	err := svc.CleanupExpiredTokens()
	assert.ErrorContains(t, err, "expired refresh tokens")
}
