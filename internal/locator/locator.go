// Package locator synthesizes the storage paths and URLs the mock hands out.
// Locators follow <user-email>/<workflow>/<id>/<artifact> and are rendered
// under the simulated video and media hosting buckets.
package locator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"vidgencraft-mock-backend/internal/config"
)

// Workflow segments used in synthesized paths.
const (
	WorkflowTextToVideo     = "text_to_video"
	WorkflowImageToVideo    = "image_to_video"
	WorkflowSoundEffects    = "sound_effects"
	WorkflowProcessedImages = "processed_images"
	WorkflowBackgrounds     = "backgrounds"
	WorkflowColorized       = "colorized"
	WorkflowMerged          = "merged"
	WorkflowWatermarked     = "watermarked"
	WorkflowMovies          = "movies"
)

type Generator struct {
	userEmail      string
	videoBucketURL string
	mediaBucketURL string
}

func New(cfg *config.Config) *Generator {
	return &Generator{
		userEmail:      cfg.MockUserEmail,
		videoBucketURL: strings.TrimRight(cfg.VideoBucketURL, "/"),
		mediaBucketURL: strings.TrimRight(cfg.MediaBucketURL, "/"),
	}
}

// NewID returns a fresh random identifier (UUIDv4, 122 bits of randomness).
func (g *Generator) NewID() string {
	return uuid.NewString()
}

// Path builds a storage key under the mock user's namespace.
func (g *Generator) Path(workflow, id, artifact string) string {
	return fmt.Sprintf("%s/%s/%s/%s", g.userEmail, workflow, id, artifact)
}

// VideoURL renders a key as a URL under the video hosting bucket.
func (g *Generator) VideoURL(key string) string {
	return g.videoBucketURL + "/" + key
}

// MediaURL renders a key as a URL under the image/thumbnail hosting bucket.
func (g *Generator) MediaURL(key string) string {
	return g.mediaBucketURL + "/" + key
}

// OutputVideoURL is the common "finished video" locator for a workflow run.
func (g *Generator) OutputVideoURL(workflow, id string) string {
	return g.VideoURL(g.Path(workflow, id, "output.mp4"))
}

// ThumbnailURL is the matching thumbnail locator for a workflow run.
func (g *Generator) ThumbnailURL(workflow, id string) string {
	return g.MediaURL(g.Path(workflow, id, "thumbnail.jpg"))
}
