package models

type SignupRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required"`
	ResetToken      string `json:"reset_token" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type TextPromptRequest struct {
	Text        string `json:"text" binding:"required"`
	VideoLength int    `json:"video_length" binding:"required"`
}

type BackgroundPromptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type BackgroundMergeRequest struct {
	Background        map[string]interface{} `json:"background" binding:"required"`
	Emotion           string                 `json:"emotion" binding:"required"`
	CombinedImagePath string                 `json:"combinedImagePath,omitempty"`
	NumberOfImages    int                    `json:"numberOfImages,omitempty"`
}

type PromptRequest struct {
	Background      string `json:"background" binding:"required"`
	Emotion         string `json:"emotion" binding:"required"`
	MergedImagePath string `json:"mergedImagePath" binding:"required"`
	NumberOfImages  int    `json:"numberOfImages,omitempty"`
}

type PreferencesRequest struct {
	BackgroundPrompt   string `json:"backgroundPrompt" binding:"required"`
	ExpressionPrompt   string `json:"expressionPrompt" binding:"required"`
	SelectedBackground string `json:"selectedBackground" binding:"required"`
	MergedImagePath    string `json:"mergedImagePath,omitempty"`
	SelectedModel      string `json:"selectedModel" binding:"required"`
	NumberOfImages     int    `json:"numberOfImages,omitempty"`
}

// AudioGenerationRequest mirrors the MMAudio job parameters. Every field is
// optional; the mock only looks at creation_id.
type AudioGenerationRequest struct {
	VideoURL       string  `json:"video_url,omitempty"`
	Prompt         string  `json:"prompt,omitempty"`
	NegativePrompt string  `json:"negative_prompt,omitempty"`
	Seed           *int    `json:"seed,omitempty"`
	NumSteps       int     `json:"num_steps,omitempty"`
	Duration       float64 `json:"duration,omitempty"`
	CFGStrength    float64 `json:"cfg_strength,omitempty"`
	MaskAwayClip   bool    `json:"mask_away_clip,omitempty"`
	CreationID     string  `json:"creation_id,omitempty"`
}

type S3FileRequest struct {
	Key string `json:"key"`
}

type ClipRequest struct {
	Clips      []map[string]interface{} `json:"clips" binding:"required"`
	OutputName string                   `json:"output_name" binding:"required"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
