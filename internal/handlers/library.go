package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vidgencraft-mock-backend/internal/locator"
	"vidgencraft-mock-backend/internal/models"
)

type LibraryHandler struct {
	locator *locator.Generator
}

func NewLibraryHandler(loc *locator.Generator) *LibraryHandler {
	return &LibraryHandler{locator: loc}
}

// GetLibrary godoc
// @Summary     User creation library
// @Description Returns a fixed set of three creations, one per workflow type, with fresh ids on every call.
// @Tags        library
// @Produce     json
// @Param       user_id path string true "User id"
// @Success     200 {object} models.LibraryResponse
// @Router      /library/{user_id} [get]
func (h *LibraryHandler) GetLibrary(c *gin.Context) {
	now := time.Now()
	c.JSON(http.StatusOK, models.LibraryResponse{
		Creations: []models.Creation{
			h.creation(locator.WorkflowTextToVideo, "A beautiful sunset over mountains", now),
			h.creation(locator.WorkflowImageToVideo, "Beach scene with waves", now),
			h.creation(locator.WorkflowSoundEffects, "Forest sounds with birds", now),
		},
	})
}

func (h *LibraryHandler) creation(workflow, prompt string, createdAt time.Time) models.Creation {
	return models.Creation{
		ID:        h.locator.NewID(),
		Type:      workflow,
		CreatedAt: createdAt,
		URL:       h.locator.OutputVideoURL(workflow, h.locator.NewID()),
		Thumbnail: h.locator.ThumbnailURL(workflow, h.locator.NewID()),
		Metadata:  models.CreationMetadata{Prompt: prompt},
	}
}

// DeleteCreation godoc
// @Summary     Delete a creation
// @Description Accepts any id and always reports success.
// @Tags        library
// @Produce     json
// @Param       creation_id path string true "Creation id"
// @Success     200 {object} models.StatusMessageResponse
// @Router      /library/{creation_id} [delete]
func (h *LibraryHandler) DeleteCreation(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusMessageResponse{
		Status:  "success",
		Message: fmt.Sprintf("Creation %s deleted successfully", c.Param("creation_id")),
	})
}
