package entity

import "time"

// Admission is a prospective student's intake form submission.
type Admission struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PhoneNum    string    `gorm:"size:15;not null" json:"phone_num"`
	StudentName string    `gorm:"size:100;not null" json:"student_name"`
	Address     string    `gorm:"not null" json:"address"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName defines the table name for GORM.
func (Admission) TableName() string {
	return "admissions"
}
