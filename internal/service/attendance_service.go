package service

import (
	"fmt"
	"time"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
)

// AttendanceEntry is one student row in a bulk save request.
type AttendanceEntry struct {
	StudentName string `json:"student_name"`
	Status      string `json:"status"`
	RollNumber  int    `json:"roll_number"`
	Year        string `json:"year"`
}

// WeeklyPoint is one per-day row of the weekly attendance chart.
type WeeklyPoint struct {
	Day     string `json:"day"`
	Present int64  `json:"Present"`
	Absent  int64  `json:"Absent"`
}

// MonthlyPoint is one per-day row of the monthly attendance chart,
// labelled with the month abbreviation.
type MonthlyPoint struct {
	Month   string `json:"month"`
	Present int64  `json:"Present"`
	Absent  int64  `json:"Absent"`
}

// AttendanceSummary feeds the dashboard charts.
type AttendanceSummary struct {
	Weekly  []WeeklyPoint  `json:"weekly"`
	Monthly []MonthlyPoint `json:"monthly"`
}

// AttendanceService records daily attendance sheets and aggregates
// them for reporting.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
}

func NewAttendanceService(attendanceRepo repository.AttendanceRepository) (*AttendanceService, error) {
	if attendanceRepo == nil {
		return nil, fmt.Errorf("attendance repository is required")
	}
	return &AttendanceService{attendanceRepo: attendanceRepo}, nil
}

// SaveSheet records one attendance row per student for a division on a
// given date.
func (s *AttendanceService) SaveSheet(date time.Time, division string, students []AttendanceEntry) error {
	if division == "" || len(students) == 0 {
		return fmt.Errorf("%w: date, division and students are required", apperrors.ErrValidation)
	}

	records := make([]entity.Attendance, 0, len(students))
	for _, st := range students {
		if st.Status != entity.AttendancePresent && st.Status != entity.AttendanceAbsent {
			return fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, st.Status)
		}
		records = append(records, entity.Attendance{
			Date:        date,
			Division:    division,
			StudentName: st.StudentName,
			Status:      st.Status,
			RollNumber:  st.RollNumber,
			Year:        st.Year,
		})
	}

	return s.attendanceRepo.CreateBatch(records)
}

// List returns attendance rows matching the filter.
func (s *AttendanceService) List(filter repository.AttendanceFilter) ([]entity.Attendance, error) {
	return s.attendanceRepo.List(filter)
}

// Update replaces a single attendance row.
func (s *AttendanceService) Update(record *entity.Attendance) error {
	if record.Status != entity.AttendancePresent && record.Status != entity.AttendanceAbsent {
		return fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, record.Status)
	}
	return s.attendanceRepo.Update(record)
}

// GetByID returns a single attendance row.
func (s *AttendanceService) GetByID(id uint) (*entity.Attendance, error) {
	return s.attendanceRepo.GetByID(id)
}

// Delete removes a single attendance row.
func (s *AttendanceService) Delete(id uint) error {
	return s.attendanceRepo.Delete(id)
}

// Summary aggregates present/absent counts per day since the start of
// the current week (Monday) and since the first of the current month.
// Division is an optional filter.
func (s *AttendanceService) Summary(division string) (*AttendanceSummary, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	offset := int(today.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	weekStart := today.AddDate(0, 0, -offset)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	weekly, err := s.attendanceRepo.CountByDateSince(weekStart, division)
	if err != nil {
		return nil, err
	}
	monthly, err := s.attendanceRepo.CountByDateSince(monthStart, division)
	if err != nil {
		return nil, err
	}

	summary := &AttendanceSummary{
		Weekly:  make([]WeeklyPoint, 0, len(weekly)),
		Monthly: make([]MonthlyPoint, 0, len(monthly)),
	}
	for _, row := range weekly {
		summary.Weekly = append(summary.Weekly, WeeklyPoint{
			Day:     row.Date.Format("Mon"),
			Present: row.Present,
			Absent:  row.Absent,
		})
	}
	for _, row := range monthly {
		summary.Monthly = append(summary.Monthly, MonthlyPoint{
			Month:   row.Date.Format("Jan"),
			Present: row.Present,
			Absent:  row.Absent,
		})
	}

	return summary, nil
}
