package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vidgencraft-mock-backend/internal/locator"
	"vidgencraft-mock-backend/internal/models"
)

// mockClipDuration is the fixed length reported for any uploaded video.
const mockClipDuration = 8.0

type AudioHandler struct {
	locator *locator.Generator
}

func NewAudioHandler(loc *locator.Generator) *AudioHandler {
	return &AudioHandler{locator: loc}
}

// UploadVideo godoc
// @Summary     Upload a video for audio generation
// @Description The file is discarded; a sound-effects input locator is synthesized for it.
// @Tags        audio
// @Accept      multipart/form-data
// @Produce     json
// @Param       video formData file true "Video file"
// @Param       watermark formData bool false "Apply watermark"
// @Success     200 {object} models.VideoUploadResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /api/upload_video [post]
func (h *AudioHandler) UploadVideo(c *gin.Context) {
	if _, err := c.FormFile("video"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: "video file is required",
		})
		return
	}
	// Accepted for shape; the mock never watermarks on upload.
	_, _ = strconv.ParseBool(c.PostForm("watermark"))

	creationID := h.locator.NewID()
	key := h.locator.Path(locator.WorkflowSoundEffects, creationID, "input.mp4")
	c.JSON(http.StatusOK, models.VideoUploadResponse{
		Status:     "success",
		VideoURL:   h.locator.VideoURL(key),
		S3Key:      key,
		CreationID: creationID,
		Duration:   mockClipDuration,
	})
}

// GenerateAudio godoc
// @Summary     Start audio generation
// @Description Echoes the supplied creation_id, or mints one if absent.
// @Tags        audio
// @Accept      json
// @Produce     json
// @Param       request body models.AudioGenerationRequest true "Generation parameters"
// @Success     200 {object} models.AudioGenerationResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /api/generate_audio [post]
func (h *AudioHandler) GenerateAudio(c *gin.Context) {
	var req models.AudioGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	creationID := req.CreationID
	if creationID == "" {
		creationID = h.locator.NewID()
	}

	c.JSON(http.StatusOK, models.AudioGenerationResponse{
		Status:     "processing",
		Message:    "Audio generation started",
		CreationID: creationID,
	})
}

// AudioStatus godoc
// @Summary     Audio generation status
// @Description Always reports completed; the supplied creation id is embedded in the output locator.
// @Tags        audio
// @Produce     json
// @Param       creation_id path string true "Creation id"
// @Success     200 {object} models.AudioStatusResponse
// @Router      /api/audio_status/{creation_id} [get]
func (h *AudioHandler) AudioStatus(c *gin.Context) {
	creationID := c.Param("creation_id")
	c.JSON(http.StatusOK, models.AudioStatusResponse{
		Status:     "completed",
		CreationID: creationID,
		VideoURL:   h.locator.OutputVideoURL(locator.WorkflowSoundEffects, creationID),
	})
}

// ExtractAudio godoc
// @Summary     Extract audio track
// @Tags        audio
// @Produce     json
// @Param       creation_id path string true "Creation id"
// @Success     200 {object} models.ExtractAudioResponse
// @Router      /api/extract_audio/{creation_id} [get]
func (h *AudioHandler) ExtractAudio(c *gin.Context) {
	key := h.locator.Path(locator.WorkflowSoundEffects, c.Param("creation_id"), "audio.mp3")
	c.JSON(http.StatusOK, models.ExtractAudioResponse{
		Status:   "success",
		AudioURL: h.locator.VideoURL(key),
	})
}

// GetOutputVideo godoc
// @Summary     Output video for a creation
// @Tags        audio
// @Produce     json
// @Param       creation_id path string true "Creation id"
// @Success     200 {object} models.OutputVideoResponse
// @Router      /api/get_output_video/{creation_id} [get]
func (h *AudioHandler) GetOutputVideo(c *gin.Context) {
	c.JSON(http.StatusOK, models.OutputVideoResponse{
		Status:   "success",
		VideoURL: h.locator.OutputVideoURL(locator.WorkflowSoundEffects, c.Param("creation_id")),
	})
}

// GetS3File godoc
// @Summary     Resolve a storage key to a URL
// @Tags        audio
// @Accept      json
// @Produce     json
// @Param       request body models.S3FileRequest true "Storage key"
// @Success     200 {object} models.S3FileResponse
// @Router      /api/get_s3_file [post]
func (h *AudioHandler) GetS3File(c *gin.Context) {
	var req models.S3FileRequest
	_ = c.ShouldBindJSON(&req)
	if req.Key == "" {
		req.Key = "file.mp4"
	}

	c.JSON(http.StatusOK, models.S3FileResponse{
		Status: "success",
		URL:    h.locator.VideoURL(req.Key),
	})
}
