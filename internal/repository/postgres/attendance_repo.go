package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
	"gorm.io/gorm"
)

// AttendanceRepo implements repository.AttendanceRepository.
type AttendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates a new attendance repository.
func NewAttendanceRepo(db *gorm.DB) *AttendanceRepo {
	return &AttendanceRepo{db: db}
}

// CreateBatch inserts a day's records for a division in one statement.
func (r *AttendanceRepo) CreateBatch(records []entity.Attendance) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Create(&records).Error
}

// List returns attendance records matching the filter, in register order.
func (r *AttendanceRepo) List(filter repository.AttendanceFilter) ([]entity.Attendance, error) {
	query := r.db.Model(&entity.Attendance{})
	if filter.Division != "" {
		query = query.Where("division = ?", filter.Division)
	}
	if filter.Date != nil {
		query = query.Where("date = ?", filter.Date.Format("2006-01-02"))
	}

	var records []entity.Attendance
	err := query.Order("year, division, roll_number").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

// GetByID returns a single record.
func (r *AttendanceRepo) GetByID(id uint) (*entity.Attendance, error) {
	var record entity.Attendance
	err := r.db.First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Update saves changes to a record.
func (r *AttendanceRepo) Update(record *entity.Attendance) error {
	return r.db.Save(record).Error
}

// Delete removes a record.
func (r *AttendanceRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Attendance{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountByDateSince aggregates Present/Absent totals per day using
// conditional counts, the shape the dashboard charts consume directly.
func (r *AttendanceRepo) CountByDateSince(since time.Time, division string) ([]repository.DailyAttendanceCount, error) {
	query := r.db.Model(&entity.Attendance{}).
		Select(
			"date, "+
				"COUNT(*) FILTER (WHERE status = ?) AS present, "+
				"COUNT(*) FILTER (WHERE status = ?) AS absent",
			entity.AttendancePresent, entity.AttendanceAbsent,
		).
		Where("date >= ?", since.Format("2006-01-02"))
	if division != "" {
		query = query.Where("division = ?", division)
	}

	var counts []repository.DailyAttendanceCount
	err := query.Group("date").Order("date").Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate attendance: %w", err)
	}
	return counts, nil
}
