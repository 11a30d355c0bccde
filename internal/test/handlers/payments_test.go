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

func paymentsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewPaymentsHandler(testLocator())

	router := gin.New()
	router.POST("/create-checkout-session", h.CreateCheckoutSession)
	router.POST("/webhook", h.StripeWebhook)
	router.GET("/get-prices", h.GetPrices)
	router.GET("/config", h.GetConfig)
	return router
}

func TestGetPrices_ThreePlansWithIntervals(t *testing.T) {
	router := paymentsRouter()

	req, _ := http.NewRequest("GET", "/get-prices", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var table map[string]map[string]map[string]struct {
		ID       string  `json:"id"`
		Amount   float64 `json:"amount"`
		Interval string  `json:"interval"`
		Currency string  `json:"currency"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &table))

	require.Len(t, table, 3)
	for _, plan := range []string{"basic plan", "pro plan", "enterprise"} {
		currencies, ok := table[plan]
		require.True(t, ok, plan)
		usd, ok := currencies["usd"]
		require.True(t, ok, plan)

		for _, interval := range []string{"month", "year"} {
			price, ok := usd[interval]
			require.True(t, ok, plan+"/"+interval)
			assert.Greater(t, price.Amount, 0.0)
			assert.Equal(t, interval, price.Interval)
			assert.Equal(t, "usd", price.Currency)
			assert.True(t, strings.HasPrefix(price.ID, "price_"))
		}
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	router := paymentsRouter()

	req, _ := http.NewRequest("POST", "/create-checkout-session", strings.NewReader(`{"plan":"pro plan"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SessionID string `json:"sessionId"`
		Credits   int    `json:"credits"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.SessionID, "cs_test_"))
	assert.Equal(t, 1000, resp.Credits)
}

func TestWebhook_AcknowledgesAnyPayload(t *testing.T) {
	router := paymentsRouter()

	req, _ := http.NewRequest("POST", "/webhook", strings.NewReader(`not even json`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "success")
}

func TestStripeConfig(t *testing.T) {
	router := paymentsRouter()

	req, _ := http.NewRequest("GET", "/config", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"publishableKey":"pk_test_dummy_key"}`, w.Body.String())
}
