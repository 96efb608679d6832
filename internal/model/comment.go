package model

import (
	"time"
)

// Comment is an append-only record of a user commenting on a video
type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	VideoID   uint   `gorm:"index;not null"`
	UserID    uint   `gorm:"index;not null"`
	Text      string `gorm:"size:2000;not null"`
	CreatedAt time.Time
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// CommentView is a comment joined with its author's username, for display
type CommentView struct {
	Username  string
	Text      string
	CreatedAt time.Time
}
