package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vidgencraft-mock-backend/internal/locator"
	"vidgencraft-mock-backend/internal/models"
)

// maxSlotImages is how many imageN multipart fields the processor accepts.
const maxSlotImages = 5

type ImagesHandler struct {
	locator *locator.Generator
}

func NewImagesHandler(loc *locator.Generator) *ImagesHandler {
	return &ImagesHandler{locator: loc}
}

// ProcessImages godoc
// @Summary     Process uploaded images
// @Description Accepts up to five multipart files (image1..image5); the files are discarded and a combined-image locator is synthesized.
// @Tags        image-to-video
// @Accept      multipart/form-data
// @Produce     json
// @Success     200 {object} models.ProcessImagesResponse
// @Router      /process_images [post]
func (h *ImagesHandler) ProcessImages(c *gin.Context) {
	var images []string
	for i := 1; i <= maxSlotImages; i++ {
		if _, err := c.FormFile(fmt.Sprintf("image%d", i)); err == nil {
			images = append(images, fmt.Sprintf("image%d.jpg", len(images)+1))
		}
	}

	c.JSON(http.StatusOK, models.ProcessImagesResponse{
		Status:            "success",
		Images:            images,
		Message:           fmt.Sprintf("Successfully processed %d images", len(images)),
		CombinedImagePath: h.locator.Path(locator.WorkflowProcessedImages, h.locator.NewID(), "combined.png"),
	})
}

// UploadCustomBackground godoc
// @Summary     Upload custom background
// @Tags        image-to-video
// @Accept      multipart/form-data
// @Produce     json
// @Param       background_image formData file true "Background image"
// @Success     200 {object} models.UploadBackgroundResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /upload_custom_background [post]
func (h *ImagesHandler) UploadCustomBackground(c *gin.Context) {
	if _, err := c.FormFile("background_image"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: "background_image file is required",
		})
		return
	}

	c.JSON(http.StatusOK, models.UploadBackgroundResponse{
		Status: "success",
		Path:   h.locator.Path(locator.WorkflowBackgrounds, h.locator.NewID(), "background.jpg"),
	})
}

// GenerateAIBackground godoc
// @Summary     Generate AI background
// @Tags        image-to-video
// @Accept      json
// @Produce     json
// @Param       request body models.BackgroundPromptRequest true "Background prompt"
// @Success     200 {object} models.AIBackgroundResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /generate_ai_background [post]
func (h *ImagesHandler) GenerateAIBackground(c *gin.Context) {
	var req models.BackgroundPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	backgroundID := h.locator.NewID()
	path := h.locator.Path(locator.WorkflowBackgrounds, backgroundID, "generated.jpg")
	c.JSON(http.StatusOK, models.AIBackgroundResponse{
		Status:         "success",
		BackgroundPath: path,
		BackgroundURL:  h.locator.MediaURL(path),
	})
}

// ColorizeImage godoc
// @Summary     Colorize image
// @Tags        image-to-video
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "Image to colorize"
// @Success     200 {object} models.ColorizeImageResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /colorize-image [post]
func (h *ImagesHandler) ColorizeImage(c *gin.Context) {
	if _, err := c.FormFile("image"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: "image file is required",
		})
		return
	}

	colorizedID := h.locator.NewID()
	path := h.locator.Path(locator.WorkflowColorized, colorizedID, "colorized.jpg")
	c.JSON(http.StatusOK, models.ColorizeImageResponse{
		Status:             "success",
		ColorizedImagePath: path,
		ColorizedImageURL:  h.locator.MediaURL(path),
	})
}

// MergeBackground godoc
// @Summary     Merge images onto background
// @Tags        image-to-video
// @Accept      json
// @Produce     json
// @Param       request body models.BackgroundMergeRequest true "Merge parameters"
// @Success     200 {object} models.MergeBackgroundResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /merge_background [post]
func (h *ImagesHandler) MergeBackground(c *gin.Context) {
	var req models.BackgroundMergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	mergedID := h.locator.NewID()
	path := h.locator.Path(locator.WorkflowMerged, mergedID, "merged.jpg")
	c.JSON(http.StatusOK, models.MergeBackgroundResponse{
		Status:          "success",
		MergedImagePath: path,
		MergedImageURL:  h.locator.MediaURL(path),
	})
}

// GeneratePrompt godoc
// @Summary     Generate scene prompt
// @Description Derives a prompt string from the chosen emotion and background.
// @Tags        image-to-video
// @Accept      json
// @Produce     json
// @Param       request body models.PromptRequest true "Prompt parameters"
// @Success     200 {object} models.GeneratePromptResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /generate_prompt [post]
func (h *ImagesHandler) GeneratePrompt(c *gin.Context) {
	var req models.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.GeneratePromptResponse{
		Status: "success",
		Prompt: fmt.Sprintf("A %s scene showing %s", req.Emotion, req.Background),
	})
}

// SavePreferences godoc
// @Summary     Save generation preferences
// @Tags        image-to-video
// @Accept      json
// @Produce     json
// @Param       request body models.PreferencesRequest true "Preferences"
// @Success     200 {object} models.SavePreferencesResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /save_preferences [post]
func (h *ImagesHandler) SavePreferences(c *gin.Context) {
	var req models.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.SavePreferencesResponse{
		Status:        "success",
		Message:       "Preferences saved successfully",
		PreferencesID: h.locator.NewID(),
	})
}

// TestImagePath godoc
// @Summary     Echo an image path
// @Tags        image-to-video
// @Produce     json
// @Param       user_id path string true "User id"
// @Param       image_name path string true "Image name"
// @Success     200 {object} models.TestPathResponse
// @Router      /api/test-path/{user_id}/{image_name} [get]
func (h *ImagesHandler) TestImagePath(c *gin.Context) {
	c.JSON(http.StatusOK, models.TestPathResponse{
		Path:   c.Param("user_id") + "/" + c.Param("image_name"),
		Exists: true,
	})
}
