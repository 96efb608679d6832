package model

import (
	"time"
)

// Subscription records that a user follows a channel.
// The composite primary key guarantees at most one row per pair;
// presence of the row means subscribed.
type Subscription struct {
	UserID      uint   `gorm:"primaryKey;autoIncrement:false"`
	ChannelName string `gorm:"primaryKey;size:100"`
	CreatedAt   time.Time
}

// TableName returns the table name for Subscription
func (Subscription) TableName() string {
	return "subscriptions"
}
