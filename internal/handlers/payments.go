package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidgencraft-mock-backend/internal/locator"
	"vidgencraft-mock-backend/internal/models"
)

// priceTable is the fixed 3-tier pricing the frontend renders. The ids are
// Stripe-style but point at nothing.
var priceTable = models.PriceTable{
	"basic plan": {
		"usd": {
			Month: models.PriceInfo{ID: "price_1OvnMnSHuGJaxdvpOYxeKBwW", Amount: 9.99, Interval: "month", Currency: "usd"},
			Year:  models.PriceInfo{ID: "price_1OvnMnSHuGJaxdvpOsLw6wA6", Amount: 99.99, Interval: "year", Currency: "usd"},
		},
	},
	"pro plan": {
		"usd": {
			Month: models.PriceInfo{ID: "price_1OvnNaSHuGJaxdvpDXPqMV5I", Amount: 19.99, Interval: "month", Currency: "usd"},
			Year:  models.PriceInfo{ID: "price_1OvnNaSHuGJaxdvpBCrYdOK8", Amount: 199.99, Interval: "year", Currency: "usd"},
		},
	},
	"enterprise": {
		"usd": {
			Month: models.PriceInfo{ID: "price_1OvnOGSHuGJaxdvpjkHHtJLp", Amount: 49.99, Interval: "month", Currency: "usd"},
			Year:  models.PriceInfo{ID: "price_1OvnOGSHuGJaxdvpknIldRGv", Amount: 499.99, Interval: "year", Currency: "usd"},
		},
	},
}

type PaymentsHandler struct {
	locator *locator.Generator
}

func NewPaymentsHandler(loc *locator.Generator) *PaymentsHandler {
	return &PaymentsHandler{locator: loc}
}

// CreateCheckoutSession godoc
// @Summary     Create checkout session
// @Description Accepts any JSON payload and returns a synthesized session id.
// @Tags        payments
// @Accept      json
// @Produce     json
// @Success     200 {object} models.CheckoutSessionResponse
// @Router      /create-checkout-session [post]
func (h *PaymentsHandler) CreateCheckoutSession(c *gin.Context) {
	var body map[string]interface{}
	_ = c.ShouldBindJSON(&body)

	c.JSON(http.StatusOK, models.CheckoutSessionResponse{
		SessionID: "cs_test_" + h.locator.NewID(),
		Credits:   1000,
	})
}

// StripeWebhook godoc
// @Summary     Payment webhook receiver
// @Description Accepts any payload and always acknowledges.
// @Tags        payments
// @Produce     json
// @Success     200 {object} models.StatusMessageResponse
// @Router      /webhook [post]
func (h *PaymentsHandler) StripeWebhook(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// GetPrices godoc
// @Summary     Price table
// @Tags        payments
// @Produce     json
// @Success     200 {object} models.PriceTable
// @Router      /get-prices [get]
func (h *PaymentsHandler) GetPrices(c *gin.Context) {
	c.JSON(http.StatusOK, priceTable)
}

// GetConfig godoc
// @Summary     Payment public config
// @Tags        payments
// @Produce     json
// @Success     200 {object} models.StripeConfigResponse
// @Router      /config [get]
func (h *PaymentsHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, models.StripeConfigResponse{
		PublishableKey: "pk_test_dummy_key",
	})
}
