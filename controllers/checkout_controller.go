package controllers

import (
	"net/http"

	"github.com/jorotodorovv/art-on-display/middleware"
	"github.com/jorotodorovv/art-on-display/models"
	"github.com/jorotodorovv/art-on-display/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
	Logger   *zap.Logger
}

func NewCheckoutController(checkout *services.CheckoutService, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{Checkout: checkout, Logger: logger}
}

// Submit starts a checkout: the pending order is created and the buyer is
// handed the payment session URL to redirect to.
func (cc *CheckoutController) Submit(c *gin.Context) {
	userID := middleware.GetUserID(c)
	email := middleware.GetEmail(c)

	var req struct {
		ShippingAddress models.ShippingAddress `json:"shipping_address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, svcErr := cc.Checkout.Checkout(c.Request.Context(), userID, email, req.ShippingAddress)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, result)
}
