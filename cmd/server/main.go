// @title           VidGenCraft API (Mock)
// @version         2.0.0
// @description     Mock API for AI video and audio generation. Every endpoint returns canned responses so the frontend can develop against a stable fake backend; the WebSocket endpoints replay scripted progress sequences.

// @host      localhost:8001
// @BasePath  /

package main

import (
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vidgencraft-mock-backend/docs"
	"vidgencraft-mock-backend/internal/config"
	"vidgencraft-mock-backend/internal/handlers"
	"vidgencraft-mock-backend/internal/locator"
	"vidgencraft-mock-backend/internal/middleware"
	"vidgencraft-mock-backend/internal/mockdb"
	"vidgencraft-mock-backend/internal/progress"
	"vidgencraft-mock-backend/internal/token"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := newLogger(cfg.Environment)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Point the swagger UI at the configured base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
		}
	}

	store := mockdb.New(cfg)
	loc := locator.New(cfg)

	devToken, err := token.Mint(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to mint dev token")
	}

	sim := progress.NewSimulator(loc, cfg.StageDelay, logger)

	router := newRouter(cfg, logger, store, loc, devToken, sim)

	logger.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("mock API listening")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal().Err(err).Msg("http server failed")
	}
}

func newLogger(environment string) zerolog.Logger {
	level := zerolog.InfoLevel
	if environment == "development" {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	if environment == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return logger
}

func newRouter(cfg *config.Config, logger zerolog.Logger, store *mockdb.Store, loc *locator.Generator, devToken string, sim *progress.Simulator) *gin.Engine {
	authHandler := handlers.NewAuthHandler(cfg, store, devToken)
	paymentsHandler := handlers.NewPaymentsHandler(loc)
	textVideoHandler := handlers.NewTextVideoHandler(loc)
	imagesHandler := handlers.NewImagesHandler(loc)
	videoHandler := handlers.NewVideoHandler(loc)
	audioHandler := handlers.NewAudioHandler(loc)
	libraryHandler := handlers.NewLibraryHandler(loc)
	editingHandler := handlers.NewEditingHandler(loc)
	referralHandler := handlers.NewReferralHandler(loc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.MockAuth())

	// Wide-open CORS, matching the dev posture of the real stack
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsCfg))

	// Interactive documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/", handlers.DocsRedirectHandler)
	router.GET("/api", handlers.DocsRedirectHandler)

	// Auth
	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)
	router.GET("/verify-token", authHandler.VerifyToken)
	router.POST("/forgot-password", authHandler.ForgotPassword)
	router.POST("/verify-otp", authHandler.VerifyOTP)
	router.POST("/reset-password", authHandler.ResetPassword)
	router.GET("/auth/google", authHandler.GoogleAuth)

	// Payments
	router.POST("/create-checkout-session", paymentsHandler.CreateCheckoutSession)
	router.POST("/webhook", paymentsHandler.StripeWebhook)
	router.GET("/get-prices", paymentsHandler.GetPrices)
	router.GET("/config", paymentsHandler.GetConfig)

	// Text to video
	router.POST("/text-segmentor", textVideoHandler.TextSegmentor)
	router.GET("/text-to-video/ws/:user_email", sim.Handler(progress.TextToVideo))

	// Image to video
	router.POST("/process_images", imagesHandler.ProcessImages)
	router.POST("/upload_custom_background", imagesHandler.UploadCustomBackground)
	router.POST("/generate_ai_background", imagesHandler.GenerateAIBackground)
	router.POST("/colorize-image", imagesHandler.ColorizeImage)
	router.POST("/merge_background", imagesHandler.MergeBackground)
	router.POST("/generate_prompt", imagesHandler.GeneratePrompt)
	router.POST("/save_preferences", imagesHandler.SavePreferences)
	router.GET("/api/test-path/:user_id/:image_name", imagesHandler.TestImagePath)
	router.GET("/ws/:user_email", sim.Handler(progress.ImageToVideo))

	// Video generation
	router.POST("/generate_video_thread", videoHandler.GenerateVideoThread)
	router.POST("/api/video/generate", videoHandler.GenerateVideo)

	// Audio generation
	router.POST("/api/upload_video", audioHandler.UploadVideo)
	router.POST("/api/generate_audio", audioHandler.GenerateAudio)
	router.GET("/api/audio_status/:creation_id", audioHandler.AudioStatus)
	router.GET("/api/status/:creation_id", audioHandler.AudioStatus)
	router.GET("/api/extract_audio/:creation_id", audioHandler.ExtractAudio)
	router.GET("/api/get_output_video/:creation_id", audioHandler.GetOutputVideo)
	router.POST("/api/get_s3_file", audioHandler.GetS3File)
	router.GET("/api/ws/generation/:user_email", sim.Handler(progress.AudioGeneration))

	// Library
	router.GET("/library/:user_id", libraryHandler.GetLibrary)
	router.DELETE("/library/:creation_id", libraryHandler.DeleteCreation)

	// Editing
	router.POST("/watermark", editingHandler.AddWatermark)
	router.POST("/movie/clips", editingHandler.CombineClips)

	// Referral and stats
	router.POST("/referral/generate", referralHandler.GenerateCode)
	router.POST("/referral/verify", referralHandler.VerifyCode)
	router.GET("/character/score/:user_id", handlers.CharacterScore)

	// Health
	router.GET("/utils/health", handlers.HealthHandler)
	router.GET("/api/health", handlers.APIHealthHandler)

	return router
}
