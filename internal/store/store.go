package store

import (
	"context"
	"time"

	"github.com/user/amazstreme/internal/model"
)

// Store defines the interface for data persistence operations
type Store interface {
	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id uint) (*model.User, error)
	GetUserByCredentials(ctx context.Context, username, credential string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uint, avatarPath, bio string) error

	// Video operations
	CreateVideo(ctx context.Context, video *model.Video) error
	GetVideo(ctx context.Context, id uint) (*model.Video, error)
	UpdateVideoPath(ctx context.Context, id uint, path string) error
	DeleteVideo(ctx context.Context, id uint) error
	IncrementLikes(ctx context.Context, id uint) (int, error)
	ListVideos(ctx context.Context, searchText, category string) ([]*model.Video, error)
	CountVideos(ctx context.Context) (int64, error)

	// Comment operations
	AddComment(ctx context.Context, comment *model.Comment) error
	ListComments(ctx context.Context, videoID uint) ([]*model.CommentView, error)

	// Subscription operations
	Subscribe(ctx context.Context, userID uint, channel string) error
	Unsubscribe(ctx context.Context, userID uint, channel string) error
	IsSubscribed(ctx context.Context, userID uint, channel string) (bool, error)
	ListSubscriptions(ctx context.Context, userID uint) ([]string, error)

	// Watch progress operations
	UpsertProgress(ctx context.Context, userID, videoID uint, progress float64, observedAt time.Time) error
	GetProgress(ctx context.Context, userID, videoID uint) (float64, bool, error)
	ListHistory(ctx context.Context, userID uint) ([]*model.HistoryEntry, error)

	// Download operations
	UpsertDownload(ctx context.Context, userID, videoID uint, localPath string) error
	ListDownloads(ctx context.Context, userID uint) ([]*model.DownloadEntry, error)

	// Health check
	Ping(ctx context.Context) error
	Close() error
}
