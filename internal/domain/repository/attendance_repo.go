package repository

import (
	"time"

	"github.com/yourusername/school-api/internal/domain/entity"
)

// AttendanceFilter narrows attendance listings. Zero values mean "any".
type AttendanceFilter struct {
	Division string
	Date     *time.Time
}

// DailyAttendanceCount is one day's Present/Absent totals.
type DailyAttendanceCount struct {
	Date    time.Time `json:"date"`
	Present int64     `json:"present"`
	Absent  int64     `json:"absent"`
}

// AttendanceRepository defines persistence operations for attendance records.
type AttendanceRepository interface {
	CreateBatch(records []entity.Attendance) error
	List(filter AttendanceFilter) ([]entity.Attendance, error)
	GetByID(id uint) (*entity.Attendance, error)
	Update(record *entity.Attendance) error
	Delete(id uint) error
	// CountByDateSince aggregates Present/Absent totals per day for all
	// records with date >= since, optionally narrowed to a division.
	CountByDateSince(since time.Time, division string) ([]DailyAttendanceCount, error)
}
