package model

import (
	"time"
)

// DefaultCategory is used when an upload does not name a category.
const DefaultCategory = "General"

// Video represents a catalog-backed video with metadata.
// Uploader is nil for system content.
type Video struct {
	ID         uint   `gorm:"primaryKey"`
	Title      string `gorm:"size:500;not null"`
	FilePath   string `gorm:"size:500"`
	UploaderID *uint  `gorm:"index"`
	Likes      int    `gorm:"default:0;not null"`
	Category   string `gorm:"size:100;default:General"`
	Tags       string `gorm:"size:500"`
	Duration   int    `gorm:"default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the table name for Video
func (Video) TableName() string {
	return "videos"
}
