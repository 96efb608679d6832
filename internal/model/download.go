package model

import (
	"time"
)

// Download records a local copy of a video made for a user.
// Re-downloading overwrites the existing row.
type Download struct {
	UserID       uint   `gorm:"primaryKey;autoIncrement:false"`
	VideoID      uint   `gorm:"primaryKey;autoIncrement:false"`
	DownloadPath string `gorm:"size:500;not null"`
	DownloadedAt time.Time
}

// TableName returns the table name for Download
func (Download) TableName() string {
	return "downloads"
}

// DownloadEntry is a download joined with its video, for display
type DownloadEntry struct {
	VideoID      uint
	Title        string
	DownloadPath string
}
