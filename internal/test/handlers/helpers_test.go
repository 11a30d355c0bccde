package handlers_test

import (
	"time"

	"vidgencraft-mock-backend/internal/config"
	"vidgencraft-mock-backend/internal/locator"
)

func testConfig() *config.Config {
	return &config.Config{
		MockUserID:     "123e4567-e89b-12d3-a456-426614174000",
		MockUserEmail:  "user@example.com",
		JWTSecret:      "test-secret-key-for-jwt-signing-must-be-long-enough",
		VideoBucketURL: "https://vidgencraft-videos.s3.amazonaws.com",
		MediaBucketURL: "https://vidgencraft-media.s3.amazonaws.com",
		StageDelay:     time.Millisecond,
		Port:           "8001",
		Environment:    "test",
	}
}

func testLocator() *locator.Generator {
	return locator.New(testConfig())
}
