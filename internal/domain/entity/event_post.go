package entity

import "time"

// EventPost is a public announcement, optionally with an attached
// image or PDF flyer.
type EventPost struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FileURL     string    `gorm:"size:1024" json:"file_url,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName defines the table name for GORM.
func (EventPost) TableName() string {
	return "event_posts"
}
