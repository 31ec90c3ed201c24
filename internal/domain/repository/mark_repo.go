package repository

import "github.com/yourusername/school-api/internal/domain/entity"

// MarkFilter narrows mark sheet queries. Zero values mean "any".
type MarkFilter struct {
	Division string
	Year     int
	Exam     string
}

// StudentMarkRepository defines persistence operations for mark sheets.
type StudentMarkRepository interface {
	Create(mark *entity.StudentMark) error
	GetByID(id uint) (*entity.StudentMark, error)
	List(filter MarkFilter) ([]entity.StudentMark, error)
	Update(mark *entity.StudentMark) error
	Delete(id uint) error
	// DeleteByFilter bulk-deletes matching rows and returns the count.
	DeleteByFilter(filter MarkFilter) (int64, error)
	DeleteAll() (int64, error)
}
