package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	DB     DBConfig
	Media  MediaConfig
	Feed   FeedConfig
	Player PlayerConfig
	Server ServerConfig
}

// DBConfig holds database configuration
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"3306"`
	User     string `envconfig:"DB_USER" default:"root"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	Database string `envconfig:"DB_NAME" default:"amazstreme"`
	MaxConns int    `envconfig:"DB_MAX_CONNS" default:"10"`
}

// MediaConfig holds the local media library layout
type MediaConfig struct {
	VideosDir    string `envconfig:"MEDIA_VIDEOS_DIR" default:"videos"`
	DownloadsDir string `envconfig:"MEDIA_DOWNLOADS_DIR" default:"downloads"`
}

// FeedConfig holds feed assembly policy
type FeedConfig struct {
	// DefaultChannel is seeded as a subscription for users that have none.
	DefaultChannel string `envconfig:"FEED_DEFAULT_CHANNEL" default:"TechReviews"`
	AdsEnabled     bool   `envconfig:"FEED_ADS_ENABLED" default:"true"`
}

// PlayerConfig holds playback reconciliation configuration
type PlayerConfig struct {
	// PersistInterval coalesces progress writes to at most one per
	// interval. Zero persists on every position update.
	PersistInterval time.Duration `envconfig:"PLAYER_PERSIST_INTERVAL" default:"0s"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// DSN returns the MySQL data source name
func (c *DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to load db config: %w", err)
	}

	if err := envconfig.Process("", &cfg.Media); err != nil {
		return nil, fmt.Errorf("failed to load media config: %w", err)
	}

	if err := envconfig.Process("", &cfg.Feed); err != nil {
		return nil, fmt.Errorf("failed to load feed config: %w", err)
	}

	if err := envconfig.Process("", &cfg.Player); err != nil {
		return nil, fmt.Errorf("failed to load player config: %w", err)
	}

	if err := envconfig.Process("", &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.DB.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Media.VideosDir == "" {
		return fmt.Errorf("MEDIA_VIDEOS_DIR must not be empty")
	}
	if c.Media.DownloadsDir == "" {
		return fmt.Errorf("MEDIA_DOWNLOADS_DIR must not be empty")
	}
	if c.Feed.DefaultChannel == "" {
		return fmt.Errorf("FEED_DEFAULT_CHANNEL must not be empty")
	}
	if c.Player.PersistInterval < 0 {
		return fmt.Errorf("PLAYER_PERSIST_INTERVAL must not be negative")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535")
	}
	return nil
}
