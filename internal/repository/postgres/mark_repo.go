package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
	"gorm.io/gorm"
)

// StudentMarkRepo implements repository.StudentMarkRepository.
type StudentMarkRepo struct {
	db *gorm.DB
}

// NewStudentMarkRepo creates a new mark sheet repository.
func NewStudentMarkRepo(db *gorm.DB) *StudentMarkRepo {
	return &StudentMarkRepo{db: db}
}

// Create persists a new mark sheet row. Duplicate
// (division, roll_no, year, exam) rows surface as ErrConflict.
func (r *StudentMarkRepo) Create(mark *entity.StudentMark) error {
	err := r.db.Create(mark).Error
	if err != nil && isUniqueViolation(err) {
		return apperrors.ErrConflict
	}
	return err
}

// isUniqueViolation detects Postgres unique violation (23505) for both
// the pgx/v5 and lib/pq drivers.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// GetByID returns a single row.
func (r *StudentMarkRepo) GetByID(id uint) (*entity.StudentMark, error) {
	var mark entity.StudentMark
	err := r.db.First(&mark, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &mark, nil
}

func applyMarkFilter(query *gorm.DB, filter repository.MarkFilter) *gorm.DB {
	if filter.Division != "" {
		query = query.Where("division = ?", filter.Division)
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.Exam != "" {
		query = query.Where("exam = ?", filter.Exam)
	}
	return query
}

// List returns matching rows ordered by roll number.
func (r *StudentMarkRepo) List(filter repository.MarkFilter) ([]entity.StudentMark, error) {
	query := applyMarkFilter(r.db.Model(&entity.StudentMark{}), filter)

	var marks []entity.StudentMark
	err := query.Order("roll_no").Find(&marks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list marks: %w", err)
	}
	return marks, nil
}

// Update saves changes to a row.
func (r *StudentMarkRepo) Update(mark *entity.StudentMark) error {
	return r.db.Save(mark).Error
}

// Delete removes a single row.
func (r *StudentMarkRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.StudentMark{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteByFilter bulk-deletes matching rows and returns the count.
func (r *StudentMarkRepo) DeleteByFilter(filter repository.MarkFilter) (int64, error) {
	query := applyMarkFilter(r.db, filter)
	result := query.Delete(&entity.StudentMark{})
	return result.RowsAffected, result.Error
}

// DeleteAll clears the whole mark sheet table.
func (r *StudentMarkRepo) DeleteAll() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&entity.StudentMark{})
	return result.RowsAffected, result.Error
}
