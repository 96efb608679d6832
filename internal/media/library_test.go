package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/amazstreme/internal/config"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	tmp := t.TempDir()
	library, err := NewLibrary(&config.MediaConfig{
		VideosDir:    filepath.Join(tmp, "videos"),
		DownloadsDir: filepath.Join(tmp, "downloads"),
	})
	if err != nil {
		t.Fatalf("NewLibrary() error = %v", err)
	}
	return library
}

func writeFile(t *testing.T, path string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestNewLibrary_CreatesDirectories(t *testing.T) {
	tmp := t.TempDir()
	videos := filepath.Join(tmp, "v")
	downloads := filepath.Join(tmp, "d")

	_, err := NewLibrary(&config.MediaConfig{VideosDir: videos, DownloadsDir: downloads})
	if err != nil {
		t.Fatalf("NewLibrary() error = %v", err)
	}

	for _, dir := range []string{videos, downloads} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %q not created", dir)
		}
	}
}

func TestIngest_NamesByVideoID(t *testing.T) {
	library := newTestLibrary(t)
	src := writeFile(t, filepath.Join(t.TempDir(), "holiday clip.mov"))

	dest, err := library.Ingest(42, src)
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if filepath.Base(dest) != "42.mov" {
		t.Errorf("ingested name = %q, want 42.mov", filepath.Base(dest))
	}
	if !library.Exists(dest) {
		t.Errorf("ingested file %q does not exist", dest)
	}
}

func TestIngest_DefaultsExtension(t *testing.T) {
	library := newTestLibrary(t)
	src := writeFile(t, filepath.Join(t.TempDir(), "noext"))

	dest, err := library.Ingest(7, src)
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if filepath.Base(dest) != "7.mp4" {
		t.Errorf("ingested name = %q, want 7.mp4", filepath.Base(dest))
	}
}

func TestIngest_MissingSource(t *testing.T) {
	library := newTestLibrary(t)

	_, err := library.Ingest(1, "/nonexistent/clip.mp4")
	if err == nil {
		t.Error("Ingest(missing) error = nil, want error")
	}
}

func TestCopyToDownloads_KeepsBasename(t *testing.T) {
	library := newTestLibrary(t)
	src := writeFile(t, filepath.Join(t.TempDir(), "lecture.mp4"))

	dest, err := library.CopyToDownloads(9, src)
	if err != nil {
		t.Fatalf("CopyToDownloads() error = %v", err)
	}
	if filepath.Base(dest) != "9_lecture.mp4" {
		t.Errorf("download name = %q, want 9_lecture.mp4", filepath.Base(dest))
	}
	if !library.Exists(dest) {
		t.Errorf("download %q does not exist", dest)
	}
}

func TestExists(t *testing.T) {
	library := newTestLibrary(t)

	if library.Exists("/nonexistent/file.mp4") {
		t.Error("Exists(missing) = true, want false")
	}
	if library.Exists(t.TempDir()) {
		t.Error("Exists(directory) = true, want false")
	}

	file := writeFile(t, filepath.Join(t.TempDir(), "present.mp4"))
	if !library.Exists(file) {
		t.Error("Exists(present) = false, want true")
	}
}
