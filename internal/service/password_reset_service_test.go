package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
)

func newResetService(t *testing.T, userRepo *MockUserRepository, otpRepo *MockPasswordResetOTPRepository, tokenRepo *MockRefreshTokenRepository, sender *recordingEmailSender) *PasswordResetService {
	t.Helper()
	var tokenRepoIface repository.RefreshTokenRepository
	if tokenRepo != nil {
		tokenRepoIface = tokenRepo
	}
	svc, err := NewPasswordResetService(userRepo, otpRepo, tokenRepoIface, sender, "http://localhost:3000/reset-password")
	require.NoError(t, err)
	return svc
}

func adminUser() *entity.User {
	return &entity.User{
		ID:       7,
		Username: "admin",
		Email:    "admin@x.com",
		Role:     entity.RoleAdmin,
	}
}

func TestGenerateResetCode_SixDigitsNoLeadingZero(t *testing.T) {
	pattern := regexp.MustCompile(`^[1-9]\d{5}$`)
	for i := 0; i < 200; i++ {
		code, err := GenerateResetCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}

func TestRequestOTP_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	otpRepo := new(MockPasswordResetOTPRepository)
	sender := &recordingEmailSender{}
	svc := newResetService(t, userRepo, otpRepo, nil, sender)

	userRepo.On("GetAdminByEmail", "nobody@x.com").Return(nil, apperrors.ErrNotFound)

	err := svc.RequestOTP(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// No record is created and no mail goes out.
	otpRepo.AssertNotCalled(t, "Create", mock.Anything)
	assert.Empty(t, sender.sentCodes)
}

func TestRequestOTP_SendsCodeThenPersists(t *testing.T) {
	userRepo := new(MockUserRepository)
	otpRepo := new(MockPasswordResetOTPRepository)
	sender := &recordingEmailSender{}
	svc := newResetService(t, userRepo, otpRepo, nil, sender)
	svc.SetCodeGenerator(func() (string, error) { return "482913", nil })

	userRepo.On("GetAdminByEmail", "admin@x.com").Return(adminUser(), nil)
	otpRepo.On("Create", mock.MatchedBy(func(otp *entity.PasswordResetOTP) bool {
		return otp.UserID == 7 && otp.Code == "482913" && otp.Status == entity.OTPStatusIssued
	})).Return(nil)

	err := svc.RequestOTP(context.Background(), "admin@x.com")
	require.NoError(t, err)

	require.Len(t, sender.sentCodes, 1)
	assert.Equal(t, "482913", sender.sentCodes[0])
	assert.Equal(t, []string{"admin@x.com"}, sender.sendTo)
	otpRepo.AssertExpectations(t)
}

func TestRequestOTP_DispatchFailureLeavesNoRecord(t *testing.T) {
	userRepo := new(MockUserRepository)
	otpRepo := new(MockPasswordResetOTPRepository)
	sender := &recordingEmailSender{failWith: errors.New("smtp down")}
	svc := newResetService(t, userRepo, otpRepo, nil, sender)

	userRepo.On("GetAdminByEmail", "admin@x.com").Return(adminUser(), nil)

	err := svc.RequestOTP(context.Background(), "admin@x.com")
	assert.ErrorIs(t, err, ErrEmailDispatch)

	// A code nobody received must never be stored.
	otpRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestVerifyOTP_InvalidCode(t *testing.T) {
	userRepo := new(MockUserRepository)
	otpRepo := new(MockPasswordResetOTPRepository)
	svc := newResetService(t, userRepo, otpRepo, nil, &recordingEmailSender{})

	userRepo.On("GetAdminByEmail", "admin@x.com").Return(adminUser(), nil)
	otpRepo.On("GetLatestIssued", uint(7), "000000").Return(nil, apperrors.ErrNotFound)

	err := svc.VerifyOTP(context.Background(), "admin@x.com", "000000")
	assert.ErrorIs(t, err, ErrInvalidOTP)
	otpRepo.AssertNotCalled(t, "MarkVerified", mock.Anything)
}

func TestVerifyOTP_EmptyCode(t *testing.T) {
	svc := newResetService(t, new(MockUserRepository), new(MockPasswordResetOTPRepository), nil, &recordingEmailSender{})

	err := svc.VerifyOTP(context.Background(), "admin@x.com", "   ")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyOTP_Expired(t *testing.T) {
	userRepo := new(MockUserRepository)
	otpRepo := new(MockPasswordResetOTPRepository)
	svc := newResetService(t, userRepo, otpRepo, nil, &recordingEmailSender{})

	stale := &entity.PasswordResetOTP{
		ID:        3,
		UserID:    7,
		Code:      "482913",
		Status:    entity.OTPStatusIssued,
		CreatedAt: time.Now().Add(-11 * time.Minute),
	}
	userRepo.On("GetAdminByEmail", "admin@x.com").Return(adminUser(), nil)
	otpRepo.On("GetLatestIssued", uint(7), "482913").Return(stale, nil)

	err := svc.VerifyOTP(context.Background(), "admin@x.com", "482913")
	assert.ErrorIs(t, err, ErrOTPExpired)

	// An expired record stays unverified.
	otpRepo.AssertNotCalled(t, "MarkVerified", mock.Anything)
	assert.Equal(t, entity.OTPStatusIssued, stale.Status)
}

func TestVerifyOTP_MarksVerified(t *testing.T) {
	userRepo := new(MockUserRepository)
	otpRepo := new(MockPasswordResetOTPRepository)
	svc := newResetService(t, userRepo, otpRepo, nil, &recordingEmailSender{})

	fresh := &entity.PasswordResetOTP{
		ID:        4,
		UserID:    7,
		Code:      "482913",
		Status:    entity.OTPStatusIssued,
		CreatedAt: time.Now().Add(-1 * time.Minute),
	}
	userRepo.On("GetAdminByEmail", "admin@x.com").Return(adminUser(), nil)
	otpRepo.On("GetLatestIssued", uint(7), "482913").Return(fresh, nil)
	otpRepo.On("MarkVerified", uint(4)).Return(nil)

	err := svc.VerifyOTP(context.Background(), "admin@x.com", "482913")
	require.NoError(t, err)
	otpRepo.AssertExpectations(t)
}

func TestResetPassword_RequiresVerifiedCode(t *testing.T) {
	userRepo := new(MockUserRepository)
	otpRepo := new(MockPasswordResetOTPRepository)
	svc := newResetService(t, userRepo, otpRepo, nil, &recordingEmailSender{})

	userRepo.On("GetAdminByEmail", "admin@x.com").Return(adminUser(), nil)
	otpRepo.On("HasVerified", uint(7)).Return(false, nil)

	err := svc.ResetPassword(context.Background(), "admin@x.com", "NewPass1!")
	assert.ErrorIs(t, err, ErrOTPNotVerified)

	// The password stays untouched.
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything)
	otpRepo.AssertNotCalled(t, "DeleteByUserID", mock.Anything)
}

func TestResetPassword_UpdatesAndConsumesAllCodes(t *testing.T) {
	userRepo := new(MockUserRepository)
	otpRepo := new(MockPasswordResetOTPRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newResetService(t, userRepo, otpRepo, tokenRepo, &recordingEmailSender{})

	userRepo.On("GetAdminByEmail", "admin@x.com").Return(adminUser(), nil)
	otpRepo.On("HasVerified", uint(7)).Return(true, nil)
	userRepo.On("UpdatePassword", uint(7), "NewPass1!").Return(nil)
	otpRepo.On("DeleteByUserID", uint(7)).Return(nil)
	tokenRepo.On("DeleteByUserID", uint(7)).Return(nil)

	err := svc.ResetPassword(context.Background(), "admin@x.com", "NewPass1!")
	require.NoError(t, err)

	userRepo.AssertExpectations(t)
	otpRepo.AssertExpectations(t)
	tokenRepo.AssertExpectations(t)
}

// Full cycle: issue, verify within a minute, reset. Mirrors a real
// admin walking through the flow with code 482913.
func TestPasswordReset_FullCycle(t *testing.T) {
	userRepo := new(MockUserRepository)
	otpRepo := new(MockPasswordResetOTPRepository)
	sender := &recordingEmailSender{}
	svc := newResetService(t, userRepo, otpRepo, nil, sender)
	svc.SetCodeGenerator(func() (string, error) { return "482913", nil })

	userRepo.On("GetAdminByEmail", "admin@x.com").Return(adminUser(), nil)

	var issued *entity.PasswordResetOTP
	otpRepo.On("Create", mock.AnythingOfType("*entity.PasswordResetOTP")).Run(func(args mock.Arguments) {
		issued = args.Get(0).(*entity.PasswordResetOTP)
		issued.ID = 1
		issued.CreatedAt = time.Now()
	}).Return(nil)

	require.NoError(t, svc.RequestOTP(context.Background(), "admin@x.com"))
	require.NotNil(t, issued)
	assert.Equal(t, "482913", issued.Code)

	otpRepo.On("GetLatestIssued", uint(7), "482913").Return(issued, nil)
	otpRepo.On("MarkVerified", uint(1)).Run(func(mock.Arguments) {
		issued.Status = entity.OTPStatusVerified
	}).Return(nil)

	require.NoError(t, svc.VerifyOTP(context.Background(), "admin@x.com", "482913"))
	assert.True(t, issued.IsVerified())

	otpRepo.On("HasVerified", uint(7)).Return(true, nil)
	userRepo.On("UpdatePassword", uint(7), "NewPass1!").Return(nil)
	otpRepo.On("DeleteByUserID", uint(7)).Return(nil)

	require.NoError(t, svc.ResetPassword(context.Background(), "admin@x.com", "NewPass1!"))
	otpRepo.AssertCalled(t, "DeleteByUserID", uint(7))
}

func TestSendResetLink_BuildsLinkFromBaseURL(t *testing.T) {
	userRepo := new(MockUserRepository)
	sender := &recordingEmailSender{}
	svc := newResetService(t, userRepo, new(MockPasswordResetOTPRepository), nil, sender)

	userRepo.On("GetAdminByEmail", "admin@x.com").Return(adminUser(), nil)

	require.NoError(t, svc.SendResetLink(context.Background(), "admin@x.com"))
	require.Len(t, sender.sentLinks, 1)
	assert.Equal(t, "http://localhost:3000/reset-password?email=admin%40x.com", sender.sentLinks[0])
}
