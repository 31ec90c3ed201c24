package entity

import "time"

// SupportMessage records one exchange with the AI support assistant.
type SupportMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserQuery   string    `gorm:"not null" json:"user_query"`
	BotResponse string    `gorm:"not null" json:"bot_response"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName defines the table name for GORM.
func (SupportMessage) TableName() string {
	return "support_messages"
}
