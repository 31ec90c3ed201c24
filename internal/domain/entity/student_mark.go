package entity

import "time"

// Exam terms accepted for a mark sheet row.
const (
	ExamFirstTerm  = "First Term"
	ExamSecondTerm = "Second Term"
	ExamAnnual     = "Annual Exam"
)

// StudentMark is one student's mark sheet for a term. Subject scores
// are nullable: a nil score means the subject was not taken.
type StudentMark struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Division    string `gorm:"size:10;not null;uniqueIndex:idx_marks_sheet" json:"division"`
	RollNo      string `gorm:"size:10;not null;uniqueIndex:idx_marks_sheet" json:"roll_no"`
	StudentName string `gorm:"size:100;not null" json:"student_name"`
	Year        int    `gorm:"not null;default:2025;uniqueIndex:idx_marks_sheet" json:"year"`
	Exam        string `gorm:"size:20;not null;default:'First Term';uniqueIndex:idx_marks_sheet" json:"exam"`

	Maths       *int `json:"maths,omitempty"`
	Physics     *int `json:"physics,omitempty"`
	Chemistry   *int `json:"chemistry,omitempty"`
	English     *int `json:"english,omitempty"`
	Malayalam   *int `json:"malayalam,omitempty"`
	SS          *int `gorm:"column:ss" json:"ss,omitempty"`
	ED          *int `gorm:"column:ed" json:"ed,omitempty"`
	Workshop    *int `json:"workshop,omitempty"`
	Eye         *int `json:"eye,omitempty"`
	GE          *int `gorm:"column:ge" json:"ge,omitempty"`
	TradeTheory *int `gorm:"column:trade_theory" json:"tradeTheory,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName defines the table name for GORM.
func (StudentMark) TableName() string {
	return "student_marks"
}

// ValidExam reports whether the exam value is one of the accepted terms.
func ValidExam(exam string) bool {
	switch exam {
	case ExamFirstTerm, ExamSecondTerm, ExamAnnual:
		return true
	}
	return false
}
