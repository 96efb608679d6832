package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_WithRequiredEnvVars(t *testing.T) {
	os.Setenv("DB_PASSWORD", "test-password")
	defer os.Unsetenv("DB_PASSWORD")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DB.Password != "test-password" {
		t.Errorf("DB.Password = %v, want %v", cfg.DB.Password, "test-password")
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Setenv("DB_PASSWORD", "test-pass")
	defer os.Unsetenv("DB_PASSWORD")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// DB defaults
	if cfg.DB.Host != "localhost" {
		t.Errorf("DB.Host = %v, want %v", cfg.DB.Host, "localhost")
	}
	if cfg.DB.Port != 3306 {
		t.Errorf("DB.Port = %v, want %v", cfg.DB.Port, 3306)
	}
	if cfg.DB.Database != "amazstreme" {
		t.Errorf("DB.Database = %v, want %v", cfg.DB.Database, "amazstreme")
	}
	if cfg.DB.MaxConns != 10 {
		t.Errorf("DB.MaxConns = %v, want %v", cfg.DB.MaxConns, 10)
	}

	// Media defaults
	if cfg.Media.VideosDir != "videos" {
		t.Errorf("Media.VideosDir = %v, want %v", cfg.Media.VideosDir, "videos")
	}
	if cfg.Media.DownloadsDir != "downloads" {
		t.Errorf("Media.DownloadsDir = %v, want %v", cfg.Media.DownloadsDir, "downloads")
	}

	// Feed defaults
	if cfg.Feed.DefaultChannel != "TechReviews" {
		t.Errorf("Feed.DefaultChannel = %v, want %v", cfg.Feed.DefaultChannel, "TechReviews")
	}
	if cfg.Feed.AdsEnabled != true {
		t.Errorf("Feed.AdsEnabled = %v, want %v", cfg.Feed.AdsEnabled, true)
	}

	// Player defaults: literal per-update persistence
	if cfg.Player.PersistInterval != 0 {
		t.Errorf("Player.PersistInterval = %v, want %v", cfg.Player.PersistInterval, 0)
	}

	// Server defaults
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %v, want %v", cfg.Server.Port, 8080)
	}
}

func TestLoad_MissingDBPassword(t *testing.T) {
	os.Unsetenv("DB_PASSWORD")

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for missing DB_PASSWORD, got nil")
	}
}

func TestLoad_PersistIntervalOverride(t *testing.T) {
	os.Setenv("DB_PASSWORD", "test-pass")
	os.Setenv("PLAYER_PERSIST_INTERVAL", "5s")
	defer func() {
		os.Unsetenv("DB_PASSWORD")
		os.Unsetenv("PLAYER_PERSIST_INTERVAL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Player.PersistInterval != 5*time.Second {
		t.Errorf("Player.PersistInterval = %v, want %v", cfg.Player.PersistInterval, 5*time.Second)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty password", func(c *Config) { c.DB.Password = "" }},
		{"empty videos dir", func(c *Config) { c.Media.VideosDir = "" }},
		{"empty downloads dir", func(c *Config) { c.Media.DownloadsDir = "" }},
		{"empty default channel", func(c *Config) { c.Feed.DefaultChannel = "" }},
		{"negative persist interval", func(c *Config) { c.Player.PersistInterval = -time.Second }},
		{"port too low", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				DB:     DBConfig{Password: "pw"},
				Media:  MediaConfig{VideosDir: "videos", DownloadsDir: "downloads"},
				Feed:   FeedConfig{DefaultChannel: "TechReviews"},
				Server: ServerConfig{Port: 8080},
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() expected error for %s, got nil", tt.name)
			}
		})
	}
}
