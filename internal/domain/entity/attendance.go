package entity

import (
	"encoding/json"
	"time"
)

const attendanceDateLayout = "2006-01-02"

// Attendance statuses.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// Attendance is one student's attendance mark for one day.
type Attendance struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Division    string    `gorm:"size:10;not null;index" json:"division"`
	Year        string    `gorm:"size:10;not null" json:"year"`
	RollNumber  int       `gorm:"not null" json:"roll_number"`
	StudentName string    `gorm:"size:100;not null" json:"student_name"`
	Status      string    `gorm:"size:10;not null" json:"status"` // "Present" | "Absent"
}

// TableName defines the table name for GORM.
func (Attendance) TableName() string {
	return "attendances"
}

// MarshalJSON renders Date as a bare calendar date ("2006-01-02"),
// the format the frontend sends and expects back.
func (a Attendance) MarshalJSON() ([]byte, error) {
	type alias Attendance
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{
		alias: alias(a),
		Date:  a.Date.Format(attendanceDateLayout),
	})
}

// UnmarshalJSON accepts the same bare calendar date.
func (a *Attendance) UnmarshalJSON(data []byte) error {
	type alias Attendance
	aux := struct {
		*alias
		Date string `json:"date"`
	}{alias: (*alias)(a)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Date == "" {
		return nil
	}

	date, err := time.Parse(attendanceDateLayout, aux.Date)
	if err != nil {
		return err
	}
	a.Date = date
	return nil
}
