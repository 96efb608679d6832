// Package media handles the local file layout backing the catalog:
// ingested uploads under the videos directory and per-user copies under
// the downloads directory.
package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/user/amazstreme/internal/config"
)

// Selector abstracts the file-chooser the UI drives. Implementations
// return the chosen local path, or ok=false when the user cancels.
type Selector interface {
	SelectVideo() (path string, ok bool, err error)
}

// Library manages media files on local disk
type Library struct {
	videosDir    string
	downloadsDir string
}

// NewLibrary creates the library and its directories
func NewLibrary(cfg *config.MediaConfig) (*Library, error) {
	if err := os.MkdirAll(cfg.VideosDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create videos dir: %w", err)
	}
	if err := os.MkdirAll(cfg.DownloadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create downloads dir: %w", err)
	}
	return &Library{videosDir: cfg.VideosDir, downloadsDir: cfg.DownloadsDir}, nil
}

// Ingest copies an uploaded file into the library, named after its
// catalog id, and returns the destination path.
func (l *Library) Ingest(videoID uint, srcPath string) (string, error) {
	dest := filepath.Join(l.videosDir, fmt.Sprintf("%d%s", videoID, extOrMP4(srcPath)))
	if err := copyFile(srcPath, dest); err != nil {
		return "", fmt.Errorf("failed to ingest video: %w", err)
	}
	return dest, nil
}

// CopyToDownloads copies a catalog file into the downloads directory as
// {id}_{basename} and returns the destination path.
func (l *Library) CopyToDownloads(videoID uint, srcPath string) (string, error) {
	dest := filepath.Join(l.downloadsDir, fmt.Sprintf("%d_%s", videoID, filepath.Base(srcPath)))
	if err := copyFile(srcPath, dest); err != nil {
		return "", fmt.Errorf("failed to copy download: %w", err)
	}
	return dest, nil
}

// Exists reports whether a media path points at a regular file
func (l *Library) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func extOrMP4(path string) string {
	if ext := filepath.Ext(path); ext != "" {
		return ext
	}
	return ".mp4"
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
