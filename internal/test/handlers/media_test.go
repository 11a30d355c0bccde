package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidgencraft-mock-backend/internal/handlers"
)

var locatorPattern = regexp.MustCompile(`^user@example\.com/[a-z_]+/[0-9a-f-]{36}/[\w.]+$`)

func mediaRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	loc := testLocator()

	textVideo := handlers.NewTextVideoHandler(loc)
	images := handlers.NewImagesHandler(loc)
	video := handlers.NewVideoHandler(loc)
	audio := handlers.NewAudioHandler(loc)
	editing := handlers.NewEditingHandler(loc)

	router := gin.New()
	router.POST("/text-segmentor", textVideo.TextSegmentor)
	router.POST("/process_images", images.ProcessImages)
	router.POST("/upload_custom_background", images.UploadCustomBackground)
	router.POST("/generate_ai_background", images.GenerateAIBackground)
	router.POST("/generate_prompt", images.GeneratePrompt)
	router.POST("/save_preferences", images.SavePreferences)
	router.GET("/api/test-path/:user_id/:image_name", images.TestImagePath)
	router.POST("/generate_video_thread", video.GenerateVideoThread)
	router.POST("/api/upload_video", audio.UploadVideo)
	router.POST("/api/generate_audio", audio.GenerateAudio)
	router.GET("/api/audio_status/:creation_id", audio.AudioStatus)
	router.GET("/api/extract_audio/:creation_id", audio.ExtractAudio)
	router.POST("/api/get_s3_file", audio.GetS3File)
	router.POST("/watermark", editing.AddWatermark)
	router.POST("/movie/clips", editing.CombineClips)
	return router
}

func TestTextSegmentor(t *testing.T) {
	router := mediaRouter()

	body := `{"text":"a story about mountains","video_length":30}`
	req, _ := http.NewRequest("POST", "/text-segmentor", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Prompts      []string `json:"prompts"`
		S3Location   string   `json:"s3_location"`
		GenerationID string   `json:"generation_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Len(t, resp.Prompts, 3)
	assert.Regexp(t, locatorPattern, resp.S3Location)
	assert.Contains(t, resp.S3Location, "/text_to_video/"+resp.GenerationID+"/prompts.json")
}

func TestTextSegmentor_MalformedBody(t *testing.T) {
	router := mediaRouter()

	req, _ := http.NewRequest("POST", "/text-segmentor", strings.NewReader(`{"text":123}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for field, filename := range fields {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func TestProcessImages_CountsUploadedFiles(t *testing.T) {
	router := mediaRouter()

	buf, contentType := multipartBody(t, map[string]string{
		"image1": "a.jpg",
		"image2": "b.jpg",
		"image3": "c.jpg",
	})
	req, _ := http.NewRequest("POST", "/process_images", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status            string   `json:"status"`
		Images            []string `json:"images"`
		Message           string   `json:"message"`
		CombinedImagePath string   `json:"combined_image_path"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Len(t, resp.Images, 3)
	assert.Equal(t, "Successfully processed 3 images", resp.Message)
	assert.Contains(t, resp.CombinedImagePath, "/processed_images/")
}

func TestUploadCustomBackground_RequiresFile(t *testing.T) {
	router := mediaRouter()

	req, _ := http.NewRequest("POST", "/upload_custom_background", strings.NewReader(""))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGenerateAIBackground(t *testing.T) {
	router := mediaRouter()

	req, _ := http.NewRequest("POST", "/generate_ai_background", strings.NewReader(`{"prompt":"a calm beach"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		BackgroundPath string `json:"background_path"`
		BackgroundURL  string `json:"background_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Regexp(t, locatorPattern, resp.BackgroundPath)
	assert.Equal(t, "https://vidgencraft-media.s3.amazonaws.com/"+resp.BackgroundPath, resp.BackgroundURL)
}

func TestGeneratePrompt_DerivesFromInput(t *testing.T) {
	router := mediaRouter()

	body := `{"background":"a forest","emotion":"joyful","mergedImagePath":"p/m/x/merged.jpg"}`
	req, _ := http.NewRequest("POST", "/generate_prompt", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A joyful scene showing a forest")
}

func TestTestImagePath_EchoesSegments(t *testing.T) {
	router := mediaRouter()

	req, _ := http.NewRequest("GET", "/api/test-path/u1/pic.jpg", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"path":"u1/pic.jpg","exists":true}`, w.Body.String())
}

func TestGenerateVideoThread(t *testing.T) {
	router := mediaRouter()

	req, _ := http.NewRequest("POST", "/generate_video_thread", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status  string `json:"status"`
		VideoID string `json:"video_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "processing", resp.Status)
	assert.NotEmpty(t, resp.VideoID)
}

func TestUploadVideo(t *testing.T) {
	router := mediaRouter()

	buf, contentType := multipartBody(t, map[string]string{"video": "clip.mp4"})
	req, _ := http.NewRequest("POST", "/api/upload_video", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status     string  `json:"status"`
		VideoURL   string  `json:"video_url"`
		S3Key      string  `json:"s3_key"`
		CreationID string  `json:"creation_id"`
		Duration   float64 `json:"duration"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Contains(t, resp.S3Key, "/sound_effects/"+resp.CreationID+"/input.mp4")
	assert.Equal(t, "https://vidgencraft-videos.s3.amazonaws.com/"+resp.S3Key, resp.VideoURL)
	assert.Equal(t, 8.0, resp.Duration)
}

func TestGenerateAudio_EchoesCreationID(t *testing.T) {
	router := mediaRouter()

	req, _ := http.NewRequest("POST", "/api/generate_audio", strings.NewReader(`{"creation_id":"abc-123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"creation_id":"abc-123"`)
}

func TestAudioStatus_DeterministicPerID(t *testing.T) {
	router := mediaRouter()

	var bodies []string
	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest("GET", "/api/audio_status/fixed-id", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		bodies = append(bodies, w.Body.String())
	}

	// The supplied id is embedded, so repeated polls return identical bodies.
	assert.Equal(t, bodies[0], bodies[1])
	assert.Contains(t, bodies[0], "/sound_effects/fixed-id/output.mp4")
}

func TestExtractAudio(t *testing.T) {
	router := mediaRouter()

	req, _ := http.NewRequest("GET", "/api/extract_audio/xyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/sound_effects/xyz/audio.mp3")
}

func TestGetS3File_DefaultsKey(t *testing.T) {
	router := mediaRouter()

	req, _ := http.NewRequest("POST", "/api/get_s3_file", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://vidgencraft-videos.s3.amazonaws.com/file.mp4")
}

func TestWatermark(t *testing.T) {
	router := mediaRouter()

	req, _ := http.NewRequest("POST", "/watermark", strings.NewReader(`{"video_url":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/watermarked/")
	assert.Contains(t, w.Body.String(), "/output.mp4")
}

func TestCombineClips_UsesOutputName(t *testing.T) {
	router := mediaRouter()

	body := `{"clips":[{"id":"1"},{"id":"2"}],"output_name":"my_movie"}`
	req, _ := http.NewRequest("POST", "/movie/clips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/movies/")
	assert.Contains(t, w.Body.String(), "/my_movie.mp4")
}
