package entity

import "time"

// Short is a short-form video published on the landing page.
type Short struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Caption   string    `json:"caption"`
	VideoURL  string    `gorm:"size:1024;not null" json:"video_url"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName defines the table name for GORM.
func (Short) TableName() string {
	return "shorts"
}
