package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidgencraft-mock-backend/internal/handlers"
)

func libraryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewLibraryHandler(testLocator())

	router := gin.New()
	router.GET("/library/:user_id", h.GetLibrary)
	router.DELETE("/library/:creation_id", h.DeleteCreation)
	return router
}

func TestGetLibrary_ThreeCreationsInOrder(t *testing.T) {
	router := libraryRouter()

	req, _ := http.NewRequest("GET", "/library/u1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Creations []struct {
			ID        string `json:"id"`
			Type      string `json:"type"`
			URL       string `json:"url"`
			Thumbnail string `json:"thumbnail"`
			Metadata  struct {
				Prompt string `json:"prompt"`
			} `json:"metadata"`
		} `json:"creations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Creations, 3)
	assert.Equal(t, "text_to_video", resp.Creations[0].Type)
	assert.Equal(t, "image_to_video", resp.Creations[1].Type)
	assert.Equal(t, "sound_effects", resp.Creations[2].Type)

	for _, creation := range resp.Creations {
		assert.NotEmpty(t, creation.ID)
		assert.NotEmpty(t, creation.Metadata.Prompt)
		assert.True(t, strings.HasSuffix(creation.URL, "/output.mp4"), creation.URL)
		assert.True(t, strings.HasSuffix(creation.Thumbnail, "/thumbnail.jpg"), creation.Thumbnail)
		assert.Contains(t, creation.URL, "vidgencraft-videos")
		assert.Contains(t, creation.Thumbnail, "vidgencraft-media")
	}
}

func TestDeleteCreation_AlwaysSucceeds(t *testing.T) {
	router := libraryRouter()

	req, _ := http.NewRequest("DELETE", "/library/whatever-id", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Creation whatever-id deleted successfully")
}
