package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidgencraft-mock-backend/internal/models"
)

const apiVersion = "2.0.0"

// HealthHandler godoc
// @Summary     Health check
// @Tags        utils
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /utils/health [get]
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Version: apiVersion,
	})
}

// APIHealthHandler godoc
// @Summary     API health check
// @Tags        utils
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /api/health [get]
func APIHealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status: "ok",
	})
}

// DocsRedirectHandler sends browsers to the interactive API documentation.
func DocsRedirectHandler(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/swagger/index.html")
}

// CharacterScore godoc
// @Summary     Usage statistics for a user
// @Tags        utils
// @Produce     json
// @Param       user_id path string true "User id"
// @Success     200 {object} models.CharacterScoreResponse
// @Router      /character/score/{user_id} [get]
func CharacterScore(c *gin.Context) {
	c.JSON(http.StatusOK, models.CharacterScoreResponse{
		CharacterScore: 75,
		UsageStats: models.UsageStats{
			VideosGenerated: 10,
			TotalDuration:   120,
			FavoriteType:    "text_to_video",
		},
	})
}
