package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidgencraft-mock-backend/internal/config"
	"vidgencraft-mock-backend/internal/mockdb"
	"vidgencraft-mock-backend/internal/models"
)

type AuthHandler struct {
	cfg      *config.Config
	store    *mockdb.Store
	devToken string
}

func NewAuthHandler(cfg *config.Config, store *mockdb.Store, devToken string) *AuthHandler {
	return &AuthHandler{
		cfg:      cfg,
		store:    store,
		devToken: devToken,
	}
}

// Signup godoc
// @Summary     Sign up
// @Description Always succeeds and returns the fixed mock user id. No account is created.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.SignupRequest true "Credentials"
// @Success     200 {object} models.SignupResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.SignupResponse{
		Status:  "success",
		Message: "User created successfully",
		UserID:  h.cfg.MockUserID,
	})
}

// Login godoc
// @Summary     Log in
// @Description Accepts any credentials and returns the fixed dev token. The supplied email is echoed in the user object.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Credentials"
// @Success     200 {object} models.LoginResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	profile := h.store.Profile(h.cfg.MockUserEmail)
	profile.Email = req.Email

	c.JSON(http.StatusOK, models.LoginResponse{
		Status: "success",
		Token:  h.devToken,
		User:   profile,
	})
}

// Logout godoc
// @Summary     Log out
// @Tags        auth
// @Produce     json
// @Success     200 {object} models.StatusMessageResponse
// @Router      /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusMessageResponse{
		Status:  "success",
		Message: "Logged out successfully",
	})
}

// VerifyToken godoc
// @Summary     Verify token
// @Description Always reports the token valid and returns the fixed profile.
// @Tags        auth
// @Produce     json
// @Success     200 {object} models.VerifyTokenResponse
// @Router      /verify-token [get]
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	c.JSON(http.StatusOK, models.VerifyTokenResponse{
		Valid: true,
		User:  h.store.Profile(h.cfg.MockUserEmail),
	})
}

// ForgotPassword godoc
// @Summary     Request password reset
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.ForgotPasswordRequest true "Account email"
// @Success     200 {object} models.StatusMessageResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.StatusMessageResponse{
		Status:  "success",
		Message: "Password reset email sent",
	})
}

// VerifyOTP godoc
// @Summary     Verify reset OTP
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.VerifyOTPRequest true "Email and OTP"
// @Success     200 {object} models.VerifyOTPResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.VerifyOTPResponse{
		Status:     "success",
		Message:    "OTP verified successfully",
		ResetToken: "reset_token_12345",
	})
}

// ResetPassword godoc
// @Summary     Reset password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.ResetPasswordRequest true "Reset payload"
// @Success     200 {object} models.StatusMessageResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.StatusMessageResponse{
		Status:  "success",
		Message: "Password reset successfully",
	})
}

// GoogleAuth godoc
// @Summary     Google OAuth redirect
// @Description Redirects to the app root with the fixed dev token appended.
// @Tags        auth
// @Success     307
// @Router      /auth/google [get]
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/?token="+h.devToken)
}
