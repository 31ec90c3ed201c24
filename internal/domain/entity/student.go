package entity

// Student is the roster entry used to pre-fill attendance sheets.
type Student struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	StudentName string `gorm:"size:100;not null" json:"student_name"`
	RollNumber  int    `gorm:"not null" json:"roll_number"`
	Division    string `gorm:"size:10;not null;index" json:"division"`
	Year        string `gorm:"size:10;not null" json:"year"`
	PhoneNum    string `gorm:"size:15" json:"phone_num,omitempty"`
	Address     string `json:"address,omitempty"`
}

// TableName defines the table name for GORM.
func (Student) TableName() string {
	return "students"
}
