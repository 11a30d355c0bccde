package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidgencraft-mock-backend/internal/locator"
	"vidgencraft-mock-backend/internal/models"
)

type TextVideoHandler struct {
	locator *locator.Generator
}

func NewTextVideoHandler(loc *locator.Generator) *TextVideoHandler {
	return &TextVideoHandler{locator: loc}
}

// TextSegmentor godoc
// @Summary     Segment text into video prompts
// @Description Returns a fixed 3-prompt segmentation plus a synthesized storage location for it.
// @Tags        text-to-video
// @Accept      json
// @Produce     json
// @Param       request body models.TextPromptRequest true "Source text and target length"
// @Success     200 {object} models.TextSegmentorResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /text-segmentor [post]
func (h *TextVideoHandler) TextSegmentor(c *gin.Context) {
	var req models.TextPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	generationID := h.locator.NewID()
	c.JSON(http.StatusOK, models.TextSegmentorResponse{
		Prompts: []string{
			"A beautiful sunrise over mountains with golden light",
			"Birds flying across the clear blue sky",
			"A flowing river through a lush green forest",
		},
		S3Location:   h.locator.Path(locator.WorkflowTextToVideo, generationID, "prompts.json"),
		GenerationID: generationID,
	})
}
