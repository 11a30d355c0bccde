package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	// Mock identity seeded at startup
	MockUserID    string
	MockUserEmail string

	// Token signing
	JWTSecret string

	// Simulated media hosting
	VideoBucketURL string
	MediaBucketURL string

	// Progress simulator
	StageDelay time.Duration

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	cfg := &Config{
		MockUserID:    getEnv("MOCK_USER_ID", "123e4567-e89b-12d3-a456-426614174000"),
		MockUserEmail: getEnv("MOCK_USER_EMAIL", "user@example.com"),

		JWTSecret: getEnv("JWT_SECRET", "vidgencraft-dev-secret-do-not-use-in-production"),

		VideoBucketURL: getEnv("VIDEO_BUCKET_URL", "https://vidgencraft-videos.s3.amazonaws.com"),
		MediaBucketURL: getEnv("MEDIA_BUCKET_URL", "https://vidgencraft-media.s3.amazonaws.com"),

		Port:        getEnv("PORT", "8001"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8001"),
	}

	delay, err := time.ParseDuration(getEnv("PROGRESS_STAGE_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROGRESS_STAGE_DELAY: %w", err)
	}
	cfg.StageDelay = delay

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MockUserEmail == "" {
		return fmt.Errorf("MOCK_USER_EMAIL is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.StageDelay < 0 {
		return fmt.Errorf("PROGRESS_STAGE_DELAY must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
