package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vidgencraft-mock-backend/internal/locator"
	"vidgencraft-mock-backend/internal/models"
)

type ReferralHandler struct {
	locator *locator.Generator
}

func NewReferralHandler(loc *locator.Generator) *ReferralHandler {
	return &ReferralHandler{locator: loc}
}

// GenerateCode godoc
// @Summary     Generate referral code
// @Tags        referral
// @Produce     json
// @Success     200 {object} models.ReferralGenerateResponse
// @Router      /referral/generate [post]
func (h *ReferralHandler) GenerateCode(c *gin.Context) {
	code := "USER" + strings.ToUpper(h.locator.NewID()[:8])
	c.JSON(http.StatusOK, models.ReferralGenerateResponse{
		Status:       "success",
		ReferralCode: code,
		ReferralURL:  "https://vidgencraft.com/signup?ref=USER12345678",
	})
}

// VerifyCode godoc
// @Summary     Verify referral code
// @Description Accepts any payload; the code is always valid.
// @Tags        referral
// @Produce     json
// @Success     200 {object} models.ReferralVerifyResponse
// @Router      /referral/verify [post]
func (h *ReferralHandler) VerifyCode(c *gin.Context) {
	var body map[string]interface{}
	_ = c.ShouldBindJSON(&body)

	c.JSON(http.StatusOK, models.ReferralVerifyResponse{
		Status:       "success",
		Valid:        true,
		Referrer:     "referring_user@example.com",
		BonusCredits: 10,
	})
}
