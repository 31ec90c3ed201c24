package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
)

// MockUserRepository implements repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetAdminByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(userID uint, newPassword string) error {
	args := m.Called(userID, newPassword)
	return args.Error(0)
}

// MockPasswordResetOTPRepository implements repository.PasswordResetOTPRepository.
type MockPasswordResetOTPRepository struct {
	mock.Mock
}

func (m *MockPasswordResetOTPRepository) Create(otp *entity.PasswordResetOTP) error {
	args := m.Called(otp)
	return args.Error(0)
}

func (m *MockPasswordResetOTPRepository) GetLatestIssued(userID uint, code string) (*entity.PasswordResetOTP, error) {
	args := m.Called(userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PasswordResetOTP), args.Error(1)
}

func (m *MockPasswordResetOTPRepository) MarkVerified(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPasswordResetOTPRepository) HasVerified(userID uint) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPasswordResetOTPRepository) DeleteByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockRefreshTokenRepository implements repository.RefreshTokenRepository.
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(token *entity.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) GetByToken(token string) (*entity.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Delete(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpired() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockAttendanceRepository implements repository.AttendanceRepository.
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) CreateBatch(records []entity.Attendance) error {
	args := m.Called(records)
	return args.Error(0)
}

func (m *MockAttendanceRepository) List(filter repository.AttendanceFilter) ([]entity.Attendance, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) GetByID(id uint) (*entity.Attendance, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) Update(record *entity.Attendance) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockAttendanceRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAttendanceRepository) CountByDateSince(since time.Time, division string) ([]repository.DailyAttendanceCount, error) {
	args := m.Called(since, division)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DailyAttendanceCount), args.Error(1)
}

// MockStudentMarkRepository implements repository.StudentMarkRepository.
type MockStudentMarkRepository struct {
	mock.Mock
}

func (m *MockStudentMarkRepository) Create(mark *entity.StudentMark) error {
	args := m.Called(mark)
	return args.Error(0)
}

func (m *MockStudentMarkRepository) GetByID(id uint) (*entity.StudentMark, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StudentMark), args.Error(1)
}

func (m *MockStudentMarkRepository) List(filter repository.MarkFilter) ([]entity.StudentMark, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StudentMark), args.Error(1)
}

func (m *MockStudentMarkRepository) Update(mark *entity.StudentMark) error {
	args := m.Called(mark)
	return args.Error(0)
}

func (m *MockStudentMarkRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStudentMarkRepository) DeleteByFilter(filter repository.MarkFilter) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudentMarkRepository) DeleteAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// recordingEmailSender implements EmailService and records every send.
type recordingEmailSender struct {
	sentCodes []string
	sentLinks []string
	sendTo    []string
	failWith  error
}

func (s *recordingEmailSender) SendPasswordResetOTP(ctx context.Context, toEmail, code string) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.sentCodes = append(s.sentCodes, code)
	s.sendTo = append(s.sendTo, toEmail)
	return nil
}

func (s *recordingEmailSender) SendPasswordResetLink(ctx context.Context, toEmail, link string) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.sentLinks = append(s.sentLinks, link)
	s.sendTo = append(s.sendTo, toEmail)
	return nil
}
