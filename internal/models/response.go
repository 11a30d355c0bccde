package models

import "time"

type StatusMessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SignupResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type LoginResponse struct {
	Status string      `json:"status"`
	Token  string      `json:"token"`
	User   UserProfile `json:"user"`
}

type VerifyTokenResponse struct {
	Valid bool        `json:"valid"`
	User  UserProfile `json:"user"`
}

type VerifyOTPResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	ResetToken string `json:"reset_token"`
}

type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	Credits   int    `json:"credits"`
}

type StripeConfigResponse struct {
	PublishableKey string `json:"publishableKey"`
}

// PriceTable maps plan name to currency to interval pricing, matching the
// Stripe-shaped table the frontend renders.
type PriceTable map[string]map[string]IntervalPrices

type IntervalPrices struct {
	Month PriceInfo `json:"month"`
	Year  PriceInfo `json:"year"`
}

type PriceInfo struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Interval string  `json:"interval"`
	Currency string  `json:"currency"`
}

type TextSegmentorResponse struct {
	Prompts      []string `json:"prompts"`
	S3Location   string   `json:"s3_location"`
	GenerationID string   `json:"generation_id"`
}

type ProcessImagesResponse struct {
	Status            string   `json:"status"`
	Images            []string `json:"images"`
	Message           string   `json:"message"`
	CombinedImagePath string   `json:"combined_image_path"`
}

type UploadBackgroundResponse struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

type AIBackgroundResponse struct {
	Status         string `json:"status"`
	BackgroundPath string `json:"background_path"`
	BackgroundURL  string `json:"background_url"`
}

type ColorizeImageResponse struct {
	Status             string `json:"status"`
	ColorizedImagePath string `json:"colorized_image_path"`
	ColorizedImageURL  string `json:"colorized_image_url"`
}

type MergeBackgroundResponse struct {
	Status          string `json:"status"`
	MergedImagePath string `json:"merged_image_path"`
	MergedImageURL  string `json:"merged_image_url"`
}

type GeneratePromptResponse struct {
	Status string `json:"status"`
	Prompt string `json:"prompt"`
}

type SavePreferencesResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	PreferencesID string `json:"preferences_id"`
}

type TestPathResponse struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

type VideoGenerationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	VideoID string `json:"video_id"`
}

type VideoUploadResponse struct {
	Status     string  `json:"status"`
	VideoURL   string  `json:"video_url"`
	S3Key      string  `json:"s3_key"`
	CreationID string  `json:"creation_id"`
	Duration   float64 `json:"duration"`
}

type AudioGenerationResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	CreationID string `json:"creation_id"`
}

type AudioStatusResponse struct {
	Status     string `json:"status"`
	CreationID string `json:"creation_id"`
	VideoURL   string `json:"video_url"`
}

type ExtractAudioResponse struct {
	Status   string `json:"status"`
	AudioURL string `json:"audio_url"`
}

type OutputVideoResponse struct {
	Status   string `json:"status"`
	VideoURL string `json:"video_url"`
}

type S3FileResponse struct {
	Status string `json:"status"`
	URL    string `json:"url"`
}

type LibraryResponse struct {
	Creations []Creation `json:"creations"`
}

type Creation struct {
	ID        string           `json:"id"`
	Type      string           `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
	URL       string           `json:"url"`
	Thumbnail string           `json:"thumbnail"`
	Metadata  CreationMetadata `json:"metadata"`
}

type CreationMetadata struct {
	Prompt string `json:"prompt"`
}

type WatermarkResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	VideoURL string `json:"video_url"`
}

type MovieResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	MovieURL string `json:"movie_url"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type CharacterScoreResponse struct {
	CharacterScore int        `json:"character_score"`
	UsageStats     UsageStats `json:"usage_stats"`
}

type UsageStats struct {
	VideosGenerated int    `json:"videos_generated"`
	TotalDuration   int    `json:"total_duration"`
	FavoriteType    string `json:"favorite_type"`
}

type ReferralGenerateResponse struct {
	Status       string `json:"status"`
	ReferralCode string `json:"referral_code"`
	ReferralURL  string `json:"referral_url"`
}

type ReferralVerifyResponse struct {
	Status       string `json:"status"`
	Valid        bool   `json:"valid"`
	Referrer     string `json:"referrer"`
	BonusCredits int    `json:"bonus_credits"`
}
