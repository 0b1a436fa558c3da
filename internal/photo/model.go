package photo

import (
	"time"
)

// ProfilePhoto references an image stored on disk. At most 5 per profile and
// at most one primary.
type ProfilePhoto struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfileID   uint      `gorm:"not null;index" json:"profile_id"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	FilePath    string    `gorm:"size:512;not null" json:"file_path"`
	ContentType string    `gorm:"size:50;not null" json:"content_type"`
	SizeBytes   int64     `gorm:"not null" json:"size_bytes"`
	IsPrimary   bool      `gorm:"default:false;index" json:"is_primary"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (ProfilePhoto) TableName() string {
	return "profile_photos"
}
