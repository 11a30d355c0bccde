package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidgencraft-mock-backend/internal/locator"
	"vidgencraft-mock-backend/internal/models"
)

// EditingHandler covers the post-production stubs: watermarking and clip
// combination.
type EditingHandler struct {
	locator *locator.Generator
}

func NewEditingHandler(loc *locator.Generator) *EditingHandler {
	return &EditingHandler{locator: loc}
}

// AddWatermark godoc
// @Summary     Watermark a video
// @Description Accepts any JSON payload and returns a synthesized watermarked-video locator.
// @Tags        editing
// @Accept      json
// @Produce     json
// @Success     200 {object} models.WatermarkResponse
// @Router      /watermark [post]
func (h *EditingHandler) AddWatermark(c *gin.Context) {
	var body map[string]interface{}
	_ = c.ShouldBindJSON(&body)

	c.JSON(http.StatusOK, models.WatermarkResponse{
		Status:   "success",
		Message:  "Watermark added successfully",
		VideoURL: h.locator.OutputVideoURL(locator.WorkflowWatermarked, h.locator.NewID()),
	})
}

// CombineClips godoc
// @Summary     Combine clips into a movie
// @Tags        editing
// @Accept      json
// @Produce     json
// @Param       request body models.ClipRequest true "Clips and output name"
// @Success     200 {object} models.MovieResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /movie/clips [post]
func (h *EditingHandler) CombineClips(c *gin.Context) {
	var req models.ClipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	movieID := h.locator.NewID()
	key := h.locator.Path(locator.WorkflowMovies, movieID, req.OutputName+".mp4")
	c.JSON(http.StatusOK, models.MovieResponse{
		Status:   "success",
		Message:  "Clips combined successfully",
		MovieURL: h.locator.VideoURL(key),
	})
}
