// Package watch exposes per-user viewing state: watch history and
// local downloads.
package watch

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/user/amazstreme/internal/apperr"
	"github.com/user/amazstreme/internal/media"
	"github.com/user/amazstreme/internal/model"
	"github.com/user/amazstreme/internal/server"
	"github.com/user/amazstreme/internal/store"
)

// Service handles watch history and download records
type Service struct {
	store   store.Store
	library *media.Library
}

// NewService creates a watch-state service
func NewService(st store.Store, library *media.Library) *Service {
	return &Service{store: st, library: library}
}

// History returns the user's watch records, most recent first
func (s *Service) History(ctx context.Context, userID uint) ([]*model.HistoryEntry, error) {
	return s.store.ListHistory(ctx, userID)
}

// Progress returns the stored progress percentage for one video
func (s *Service) Progress(ctx context.Context, userID, videoID uint) (float64, bool, error) {
	return s.store.GetProgress(ctx, userID, videoID)
}

// Download copies a catalog video into the user's downloads and records
// it. An unknown video is ErrNotFound; a video whose backing file is
// gone is ErrFileMissing, and in both cases no download row is written.
// Re-downloading overwrites the previous record.
func (s *Service) Download(ctx context.Context, userID, videoID uint) (string, error) {
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

	dest, err := s.library.CopyToDownloads(videoID, video.FilePath)
	if err != nil {
		server.RecordError("download")
		return "", apperr.Storage("copy download", err)
	}
	if err := s.store.UpsertDownload(ctx, userID, videoID, dest); err != nil {
		return "", err
	}

	log.Info().Uint("userID", userID).Uint("videoID", videoID).Str("path", dest).Msg("Video downloaded")
	return dest, nil
}

// Downloads returns the user's recorded downloads
func (s *Service) Downloads(ctx context.Context, userID uint) ([]*model.DownloadEntry, error) {
	return s.store.ListDownloads(ctx, userID)
}

// DownloadedPath returns a playable local path for a previously
// downloaded video, or ErrFileMissing when the copy is gone.
func (s *Service) DownloadedPath(entry *model.DownloadEntry) (string, error) {
	if !s.library.Exists(entry.DownloadPath) {
		return "", apperr.ErrFileMissing
	}
	return entry.DownloadPath, nil
}
