package routes

import (
	"github.com/jorotodorovv/art-on-display/controllers"
	"github.com/jorotodorovv/art-on-display/middleware"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Artworks *controllers.ArtworkController
	Cart     *controllers.CartController
	Checkout *controllers.CheckoutController
	Payments *controllers.PaymentController
	Orders   *controllers.OrderController
	Content  *controllers.ContentController
	Uploads  *controllers.UploadController
}

// Register wires every endpoint. The payment-facing endpoints stay CORS-open
// because the payment processor redirect flow calls them cross-origin.
func Register(r *gin.Engine, ctrl Controllers, auth *middleware.Auth) {
	// Public catalog and content.
	r.GET("/artworks", ctrl.Artworks.List)
	r.GET("/artworks/:id", ctrl.Artworks.Get)
	r.GET("/content/:id", ctrl.Content.Get)

	// Cart and checkout require a signed-in buyer.
	cart := r.Group("/cart")
	cart.Use(auth.RequireAuth())
	cart.GET("", ctrl.Cart.GetCart)
	cart.POST("/items", ctrl.Cart.AddItem)
	cart.PUT("/items/:artwork_id", ctrl.Cart.UpdateQuantity)
	cart.DELETE("/items/:artwork_id", ctrl.Cart.RemoveItem)
	cart.DELETE("", ctrl.Cart.ClearCart)

	r.POST("/checkout", auth.RequireAuth(), ctrl.Checkout.Submit)

	orders := r.Group("/orders")
	orders.Use(auth.RequireAuth())
	orders.GET("", ctrl.Orders.ListOrders)
	orders.GET("/:id", ctrl.Orders.GetOrder)

	// Payment finalization: the success-redirect callback and the Stripe
	// webhook (no auth; the webhook is signature-verified).
	payments := r.Group("/")
	payments.Use(middleware.CORS("*"))
	payments.POST("/payments/finalize", ctrl.Payments.FinalizePayment)
	payments.POST("/stripe/webhook", ctrl.Payments.StripeWebhook)

	// Admin content management.
	admin := r.Group("/")
	admin.Use(auth.RequireAdmin())
	admin.POST("/artworks", ctrl.Artworks.Create)
	admin.PUT("/artworks/:id", ctrl.Artworks.Update)
	admin.DELETE("/artworks/:id", ctrl.Artworks.Delete)
	admin.PUT("/artworks/:id/sale", ctrl.Artworks.SetSale)
	admin.PUT("/content/:id", ctrl.Content.Put)
	admin.POST("/uploads/presign", ctrl.Uploads.Presign)
}
