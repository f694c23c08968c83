package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/jorotodorovv/art-on-display/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

type PaymentController struct {
	Finalizer *services.FinalizerService
	Stripe    *services.StripeClient
	Logger    *zap.Logger
}

func NewPaymentController(finalizer *services.FinalizerService, stripeClient *services.StripeClient, logger *zap.Logger) *PaymentController {
	return &PaymentController{
		Finalizer: finalizer,
		Stripe:    stripeClient,
		Logger:    logger,
	}
}

// FinalizePayment is called by the storefront after the success redirect,
// carrying the order ID it kept through the payment hop.
func (pc *PaymentController) FinalizePayment(c *gin.Context) {
	var req struct {
		OrderID string `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	if svcErr := pc.Finalizer.FinalizeOrder(c.Request.Context(), orderID); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// StripeWebhook receives and dispatches Stripe webhook events. The webhook
// is the authoritative finalization path; the redirect endpoint above only
// covers buyers who return before the webhook lands.
func (pc *PaymentController) StripeWebhook(c *gin.Context) {
	event, err := pc.Stripe.ParseWebhook(c.Request)
	if err != nil {
		pc.Logger.Warn("Stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook"})
		return
	}

	pc.Logger.Info("Processing Stripe webhook",
		zap.String("event_type", string(event.Type)),
		zap.String("event_id", event.ID),
	)

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			pc.Logger.Error("Failed to unmarshal checkout session", zap.Error(err))
			break
		}
		if svcErr := pc.Finalizer.FinalizeBySession(c.Request.Context(), sess.ID); svcErr != nil {
			pc.Logger.Error("Webhook finalization failed",
				zap.String("session_id", sess.ID),
				zap.String("message", svcErr.Message),
			)
		}
	default:
		pc.Logger.Info("Unhandled webhook event type", zap.String("event_type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}
