package model

// DefaultAvatar is assigned to accounts created without a profile picture.
const DefaultAvatar = "https://via.placeholder.com/100x100?text=User"

// User represents an account holding per-user library state
type User struct {
	ID         uint   `gorm:"primaryKey"`
	Username   string `gorm:"uniqueIndex;size:100;not null"`
	Credential string `gorm:"size:200;not null"`
	AvatarPath string `gorm:"size:500"`
	Bio        string `gorm:"size:1000"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
