package notification

import (
	"time"
)

// Notification is an append-only log shown to every member, newest first.
type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:150;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// Event actions carried over Kafka
const (
	ActionUserRegistered = "user.registered"
	ActionPhotoUploaded  = "photo.uploaded"
)

// Event is the wire payload published by other modules; the consumer turns
// it into Notification rows.
type Event struct {
	Action string `json:"action"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}
