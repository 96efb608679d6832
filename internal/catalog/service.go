// Package catalog manages the video catalog: upload ingest, like
// counting for both catalog-backed and ephemeral content, media path
// lookup, and comments.
package catalog

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/user/amazstreme/internal/apperr"
	"github.com/user/amazstreme/internal/media"
	"github.com/user/amazstreme/internal/model"
	"github.com/user/amazstreme/internal/server"
	"github.com/user/amazstreme/internal/store"
)

// DefaultDuration is assumed for uploads whose duration is unknown.
const DefaultDuration = 300

// UploadInput carries one upload request
type UploadInput struct {
	Title           string
	SourcePath      string
	Category        string
	Tags            string
	DurationSeconds int
}

// LikeRef identifies the target of a like: a catalog id, or the
// synthetic id of an ephemeral video. Exactly one should be set.
type LikeRef struct {
	VideoID     uint
	EphemeralID string
}

// Service handles catalog mutations and reads
type Service struct {
	store     store.Store
	library   *media.Library
	ephemeral *LikeCounter
}

// NewService creates a catalog service
func NewService(st store.Store, library *media.Library) *Service {
	return &Service{
		store:     st,
		library:   library,
		ephemeral: NewLikeCounter(),
	}
}

// Upload validates an upload, inserts its catalog row, and ingests the
// media file. The row and the file commit together: if the copy fails
// the row is deleted, so the catalog never points at missing media it
// claimed to ingest.
func (s *Service) Upload(ctx context.Context, userID uint, in UploadInput) (uint, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return 0, apperr.Validationf("title is required")
	}
	if in.SourcePath == "" {
		return 0, apperr.Validationf("no video selected")
	}

	duration := in.DurationSeconds
	if duration <= 0 {
		duration = DefaultDuration
	}

	video := &model.Video{
		Title:      title,
		FilePath:   in.SourcePath,
		UploaderID: &userID,
		Category:   strings.TrimSpace(in.Category),
		Tags:       strings.TrimSpace(in.Tags),
		Duration:   duration,
	}
	if err := s.store.CreateVideo(ctx, video); err != nil {
		return 0, err
	}

	dest, err := s.library.Ingest(video.ID, in.SourcePath)
	if err != nil {
		server.RecordError("ingest")
		if delErr := s.store.DeleteVideo(ctx, video.ID); delErr != nil {
			log.Error().Err(delErr).Uint("videoID", video.ID).Msg("Failed to roll back video row")
		}
		return 0, apperr.Storage("ingest upload", err)
	}
	if err := s.store.UpdateVideoPath(ctx, video.ID, dest); err != nil {
		return 0, err
	}

	log.Info().Uint("videoID", video.ID).Str("title", title).Msg("Video uploaded")
	if count, err := s.store.CountVideos(ctx); err == nil {
		server.UpdateVideoCount(count)
	}
	return video.ID, nil
}

// Like routes a like to the right counter: catalog-backed refs get the
// store's atomic increment, ephemeral refs the in-process counter.
// Repeated likes by the same user are counted again; there is no
// per-user dedup.
func (s *Service) Like(ctx context.Context, ref LikeRef) (int, error) {
	if ref.VideoID != 0 {
		count, err := s.store.IncrementLikes(ctx, ref.VideoID)
		if err != nil {
			return 0, err
		}
		server.RecordLike("catalog")
		return count, nil
	}
	if ref.EphemeralID == "" {
		return 0, apperr.Validationf("like target is required")
	}
	count := s.ephemeral.Increment(ref.EphemeralID)
	server.RecordLike("ephemeral")
	return count, nil
}

// VideoPath returns the playable path for a catalog video. An unknown
// id is ErrNotFound; a row whose backing file is gone is
// ErrFileMissing.
func (s *Service) VideoPath(ctx context.Context, videoID uint) (string, error) {
	video, err := s.store.GetVideo(ctx, videoID)
	if err != nil {
		return "", err
	}
	if video == nil {
		return "", apperr.NotFoundf("video %d", videoID)
	}
	if !s.library.Exists(video.FilePath) {
		return "", apperr.ErrFileMissing
	}
	return video.FilePath, nil
}

// Comment appends a comment. Whitespace-only text is rejected and
// nothing is written.
func (s *Service) Comment(ctx context.Context, userID, videoID uint, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return apperr.Validationf("comment cannot be empty")
	}
	return s.store.AddComment(ctx, &model.Comment{
		VideoID: videoID,
		UserID:  userID,
		Text:    trimmed,
	})
}

// Comments returns a video's comments, newest first
func (s *Service) Comments(ctx context.Context, videoID uint) ([]*model.CommentView, error) {
	return s.store.ListComments(ctx, videoID)
}
