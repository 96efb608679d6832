package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/user/amazstreme/internal/apperr"
	"github.com/user/amazstreme/internal/config"
	"github.com/user/amazstreme/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// MySQLStore implements Store interface using MySQL database
type MySQLStore struct {
	db *gorm.DB
}

// NewMySQLStore creates a new MySQL store instance
func NewMySQLStore(cfg *config.DBConfig) (*MySQLStore, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MaxConns / 2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Auto migrate tables
	if err := db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Subscription{},
		&model.WatchProgress{},
		&model.Download{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &MySQLStore{db: db}, nil
}

// CreateUser inserts a new user row.
// Returns ErrConflict if the username is already taken.
func (s *MySQLStore) CreateUser(ctx context.Context, user *model.User) error {
	result := s.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperr.Conflictf("username %q", user.Username)
		}
		return apperr.Storage("create user", result.Error)
	}
	return nil
}

// GetUser retrieves a user by id
func (s *MySQLStore) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	result := s.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Storage("get user", result.Error)
	}
	return &user, nil
}

// GetUserByCredentials looks up a user by username and credential.
// Returns (nil, nil) when the pair matches no account; bad credentials
// are an absence, not an error.
func (s *MySQLStore) GetUserByCredentials(ctx context.Context, username, credential string) (*model.User, error) {
	var user model.User
	result := s.db.WithContext(ctx).
		Where("username = ? AND credential = ?", username, credential).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Storage("get user by credentials", result.Error)
	}
	return &user, nil
}

// UpdateProfile overwrites both avatar and bio for a user. Idempotent.
func (s *MySQLStore) UpdateProfile(ctx context.Context, userID uint, avatarPath, bio string) error {
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"avatar_path": avatarPath, "bio": bio})
	if result.Error != nil {
		return apperr.Storage("update profile", result.Error)
	}
	return nil
}

// CreateVideo inserts a video row with zero likes
func (s *MySQLStore) CreateVideo(ctx context.Context, video *model.Video) error {
	video.Likes = 0
	if video.Category == "" {
		video.Category = model.DefaultCategory
	}
	if err := s.db.WithContext(ctx).Create(video).Error; err != nil {
		return apperr.Storage("create video", err)
	}
	return nil
}

// GetVideo retrieves a video by id
func (s *MySQLStore) GetVideo(ctx context.Context, id uint) (*model.Video, error) {
	var video model.Video
	result := s.db.WithContext(ctx).First(&video, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Storage("get video", result.Error)
	}
	return &video, nil
}

// UpdateVideoPath points a video row at its ingested media file
func (s *MySQLStore) UpdateVideoPath(ctx context.Context, id uint, path string) error {
	result := s.db.WithContext(ctx).
		Model(&model.Video{}).
		Where("id = ?", id).
		Update("file_path", path)
	if result.Error != nil {
		return apperr.Storage("update video path", result.Error)
	}
	return nil
}

// DeleteVideo removes a video row. Used to roll back a failed ingest.
func (s *MySQLStore) DeleteVideo(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Video{}, id)
	if result.Error != nil {
		return apperr.Storage("delete video", result.Error)
	}
	return nil
}

// IncrementLikes bumps a video's like count with a single atomic SQL
// increment and returns the new count.
// Returns ErrNotFound for an unknown video id.
func (s *MySQLStore) IncrementLikes(ctx context.Context, id uint) (int, error) {
	var likes int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Video{}).
			Where("id = ?", id).
			UpdateColumn("likes", gorm.Expr("likes + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.NotFoundf("video %d", id)
		}
		return tx.Model(&model.Video{}).
			Where("id = ?", id).
			Select("likes").
			Scan(&likes).Error
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return 0, err
		}
		return 0, apperr.Storage("increment likes", err)
	}
	return likes, nil
}

// ListVideos returns catalog rows matching the filters. searchText is a
// case-insensitive substring match on title, category an exact match;
// both are ANDed and an empty filter matches everything. Order is by id,
// which is stable for a fixed store state.
func (s *MySQLStore) ListVideos(ctx context.Context, searchText, category string) ([]*model.Video, error) {
	query := s.db.WithContext(ctx).Model(&model.Video{})
	if searchText != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(searchText)+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var videos []*model.Video
	if err := query.Order("id ASC").Find(&videos).Error; err != nil {
		return nil, apperr.Storage("list videos", err)
	}
	return videos, nil
}

// CountVideos returns the total count of videos
func (s *MySQLStore) CountVideos(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Video{}).Count(&count).Error; err != nil {
		return 0, apperr.Storage("count videos", err)
	}
	return count, nil
}

// AddComment appends a comment row
func (s *MySQLStore) AddComment(ctx context.Context, comment *model.Comment) error {
	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return apperr.Storage("add comment", err)
	}
	return nil
}

// ListComments returns a video's comments with author usernames,
// newest first.
func (s *MySQLStore) ListComments(ctx context.Context, videoID uint) ([]*model.CommentView, error) {
	var comments []*model.CommentView
	err := s.db.WithContext(ctx).
		Table("comments").
		Select("users.username, comments.text, comments.created_at").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.video_id = ?", videoID).
		Order("comments.created_at DESC, comments.id DESC").
		Scan(&comments).Error
	if err != nil {
		return nil, apperr.Storage("list comments", err)
	}
	return comments, nil
}

// Subscribe records a user following a channel. Subscribing twice is a
// no-op: the composite primary key plus ON CONFLICT DO NOTHING keeps at
// most one row per pair.
func (s *MySQLStore) Subscribe(ctx context.Context, userID uint, channel string) error {
	sub := &model.Subscription{UserID: userID, ChannelName: channel}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "channel_name"}},
		DoNothing: true,
	}).Create(sub)
	if result.Error != nil {
		return apperr.Storage("subscribe", result.Error)
	}
	return nil
}

// Unsubscribe removes a subscription row. Removing a non-subscriber is
// a no-op.
func (s *MySQLStore) Unsubscribe(ctx context.Context, userID uint, channel string) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND channel_name = ?", userID, channel).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return apperr.Storage("unsubscribe", result.Error)
	}
	return nil
}

// IsSubscribed reports current membership for a (user, channel) pair
func (s *MySQLStore) IsSubscribed(ctx context.Context, userID uint, channel string) (bool, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("user_id = ? AND channel_name = ?", userID, channel).
		Count(&count)
	if result.Error != nil {
		return false, apperr.Storage("check subscription", result.Error)
	}
	return count > 0, nil
}

// ListSubscriptions returns the channels a user follows
func (s *MySQLStore) ListSubscriptions(ctx context.Context, userID uint) ([]string, error) {
	var channels []string
	err := s.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("user_id = ?", userID).
		Order("created_at ASC, channel_name ASC").
		Pluck("channel_name", &channels).Error
	if err != nil {
		return nil, apperr.Storage("list subscriptions", err)
	}
	return channels, nil
}

// UpsertProgress replaces the single progress row for a (user, video)
// pair. Progress is clamped to [0,100]; last writer wins.
func (s *MySQLStore) UpsertProgress(ctx context.Context, userID, videoID uint, progress float64, observedAt time.Time) error {
	if observedAt.IsZero() {
		observedAt = time.Now()
	}
	row := &model.WatchProgress{
		UserID:      userID,
		VideoID:     videoID,
		Progress:    clampPercent(progress),
		LastWatched: observedAt,
	}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress", "last_watched"}),
	}).Create(row)
	if result.Error != nil {
		return apperr.Storage("upsert progress", result.Error)
	}
	return nil
}

// GetProgress returns the stored progress percentage for a pair.
// The bool reports whether a row exists.
func (s *MySQLStore) GetProgress(ctx context.Context, userID, videoID uint) (float64, bool, error) {
	var row model.WatchProgress
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, apperr.Storage("get progress", result.Error)
	}
	return row.Progress, true, nil
}

// ListHistory returns a user's watch records joined with their videos,
// most recently watched first.
func (s *MySQLStore) ListHistory(ctx context.Context, userID uint) ([]*model.HistoryEntry, error) {
	var entries []*model.HistoryEntry
	err := s.db.WithContext(ctx).
		Table("watch_history").
		Select("videos.id AS video_id, videos.title, watch_history.progress, videos.duration, watch_history.last_watched").
		Joins("JOIN videos ON videos.id = watch_history.video_id").
		Where("watch_history.user_id = ?", userID).
		Order("watch_history.last_watched DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, apperr.Storage("list history", err)
	}
	return entries, nil
}

// UpsertDownload records a local copy for a (user, video) pair.
// Re-downloading overwrites the previous row.
func (s *MySQLStore) UpsertDownload(ctx context.Context, userID, videoID uint, localPath string) error {
	row := &model.Download{
		UserID:       userID,
		VideoID:      videoID,
		DownloadPath: localPath,
		DownloadedAt: time.Now(),
	}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"download_path", "downloaded_at"}),
	}).Create(row)
	if result.Error != nil {
		return apperr.Storage("upsert download", result.Error)
	}
	return nil
}

// ListDownloads returns a user's downloads joined with their videos
func (s *MySQLStore) ListDownloads(ctx context.Context, userID uint) ([]*model.DownloadEntry, error) {
	var entries []*model.DownloadEntry
	err := s.db.WithContext(ctx).
		Table("downloads").
		Select("videos.id AS video_id, videos.title, downloads.download_path").
		Joins("JOIN videos ON videos.id = downloads.video_id").
		Where("downloads.user_id = ?", userID).
		Order("downloads.downloaded_at DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, apperr.Storage("list downloads", err)
	}
	return entries, nil
}

// Ping checks database connectivity
func (s *MySQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (s *MySQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying db: %w", err)
	}
	return sqlDB.Close()
}

// DB returns the underlying gorm.DB instance (for testing purposes)
func (s *MySQLStore) DB() *gorm.DB {
	return s.db
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
