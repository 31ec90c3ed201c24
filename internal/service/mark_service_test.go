package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
)

func intPtr(n int) *int { return &n }

func TestMarkService_CreateValidation(t *testing.T) {
	markRepo := new(MockStudentMarkRepository)
	svc, err := NewMarkService(markRepo)
	require.NoError(t, err)

	tests := []struct {
		name string
		mark entity.StudentMark
	}{
		{"missing division", entity.StudentMark{RollNo: "12", StudentName: "Anu"}},
		{"missing roll no", entity.StudentMark{Division: "10A", StudentName: "Anu"}},
		{"missing name", entity.StudentMark{Division: "10A", RollNo: "12"}},
		{"bad exam", entity.StudentMark{Division: "10A", RollNo: "12", StudentName: "Anu", Exam: "Midterm"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(&tt.mark)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
	markRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestMarkService_CreateValid(t *testing.T) {
	markRepo := new(MockStudentMarkRepository)
	svc, err := NewMarkService(markRepo)
	require.NoError(t, err)

	mark := &entity.StudentMark{
		Division:    "10A",
		RollNo:      "12",
		StudentName: "Anu",
		Year:        2025,
		Exam:        entity.ExamFirstTerm,
		Maths:       intPtr(88),
	}
	markRepo.On("Create", mark).Return(nil)

	require.NoError(t, svc.Create(mark))
	markRepo.AssertExpectations(t)
}

func TestMarkService_ClearDivision(t *testing.T) {
	markRepo := new(MockStudentMarkRepository)
	svc, err := NewMarkService(markRepo)
	require.NoError(t, err)

	markRepo.On("DeleteByFilter", repository.MarkFilter{
		Division: "10A",
		Year:     2025,
		Exam:     entity.ExamAnnual,
	}).Return(int64(34), nil)

	deleted, err := svc.ClearDivision("10A", 2025, entity.ExamAnnual)
	require.NoError(t, err)
	assert.Equal(t, int64(34), deleted)
}

func TestMarkService_ClearDivisionInvalid(t *testing.T) {
	markRepo := new(MockStudentMarkRepository)
	svc, err := NewMarkService(markRepo)
	require.NoError(t, err)

	_, err = svc.ClearDivision("11C", 0, "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.ClearDivision("10A", 0, "Midterm")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	markRepo.AssertNotCalled(t, "DeleteByFilter", mock.Anything)
}

func TestValidDivision(t *testing.T) {
	for _, d := range []string{"10A", "10B", "9A", "9B", "8A", "8B"} {
		assert.True(t, ValidDivision(d), d)
	}
	assert.False(t, ValidDivision("7A"))
	assert.False(t, ValidDivision(""))
	assert.False(t, ValidDivision("10a"))
}
