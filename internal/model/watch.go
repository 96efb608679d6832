package model

import (
	"time"
)

// WatchProgress is the single progress record for a (user, video) pair.
// Writes are full replacements; no history of positions is retained.
type WatchProgress struct {
	UserID      uint    `gorm:"primaryKey;autoIncrement:false"`
	VideoID     uint    `gorm:"primaryKey;autoIncrement:false"`
	Progress    float64 `gorm:"default:0;not null"`
	LastWatched time.Time
}

// TableName returns the table name for WatchProgress
func (WatchProgress) TableName() string {
	return "watch_history"
}

// HistoryEntry is a watch record joined with its video, for display
type HistoryEntry struct {
	VideoID     uint
	Title       string
	Progress    float64
	Duration    int
	LastWatched time.Time
}
