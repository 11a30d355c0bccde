package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidgencraft-mock-backend/internal/locator"
	"vidgencraft-mock-backend/internal/models"
)

type VideoHandler struct {
	locator *locator.Generator
}

func NewVideoHandler(loc *locator.Generator) *VideoHandler {
	return &VideoHandler{locator: loc}
}

// GenerateVideoThread godoc
// @Summary     Start background video generation
// @Description Accepts any JSON payload and reports a processing job with a fresh id.
// @Tags        video
// @Accept      json
// @Produce     json
// @Success     200 {object} models.VideoGenerationResponse
// @Router      /generate_video_thread [post]
func (h *VideoHandler) GenerateVideoThread(c *gin.Context) {
	var body map[string]interface{}
	_ = c.ShouldBindJSON(&body)

	c.JSON(http.StatusOK, models.VideoGenerationResponse{
		Status:  "processing",
		Message: "Video generation started in background",
		VideoID: h.locator.NewID(),
	})
}

// GenerateVideo godoc
// @Summary     Start video generation
// @Tags        video
// @Produce     json
// @Success     200 {object} models.VideoGenerationResponse
// @Router      /api/video/generate [post]
func (h *VideoHandler) GenerateVideo(c *gin.Context) {
	c.JSON(http.StatusOK, models.VideoGenerationResponse{
		Status:  "processing",
		Message: "Video generation started",
		VideoID: h.locator.NewID(),
	})
}
