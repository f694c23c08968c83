package services

import (
	"context"
	"fmt"
	"math"

	"github.com/jorotodorovv/art-on-display/database"
	"github.com/jorotodorovv/art-on-display/models"
	"github.com/jorotodorovv/art-on-display/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// guestEmail backs the Stripe customer when the token carries no email
// claim.
const guestEmail = "guest@example.com"

// CheckoutResult is returned to the storefront, which redirects the buyer
// to URL and keeps OrderID for the payment-success page.
type CheckoutResult struct {
	OrderID uuid.UUID `json:"order_id"`
	URL     string    `json:"url"`
}

// CheckoutService turns a cart and a shipping address into a pending order
// and a hosted payment session.
type CheckoutService struct {
	orders   repository.OrderRepository
	artworks repository.ArtworkRepository
	carts    database.CartStore
	sessions SessionCreator
	events   OrderEventSink
	validate *validator.Validate
	baseURL  string
	logger   *zap.Logger
}

func NewCheckoutService(
	orders repository.OrderRepository,
	artworks repository.ArtworkRepository,
	carts database.CartStore,
	sessions SessionCreator,
	events OrderEventSink,
	baseURL string,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		orders:   orders,
		artworks: artworks,
		carts:    carts,
		sessions: sessions,
		events:   events,
		validate: validator.New(),
		baseURL:  baseURL,
		logger:   logger,
	}
}

// Checkout validates the address and the cart, re-prices every line item
// from the stored artworks, inserts a pending order and creates the payment
// session. Client-held prices are never trusted.
func (s *CheckoutService) Checkout(ctx context.Context, userID, email string, address models.ShippingAddress) (*CheckoutResult, *ServiceError) {
	if err := s.validate.Struct(address); err != nil {
		return nil, &ServiceError{StatusCode: 400, Message: "invalid shipping address"}
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "failed to load cart"}
	}
	if len(cart.Items) == 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "cart is empty"}
	}

	ids := make([]uint, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ArtworkID)
	}
	artworks, err := s.artworks.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to load cart artworks", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "failed to load artworks"}
	}
	byID := make(map[uint]models.Artwork, len(artworks))
	for _, a := range artworks {
		byID[a.ID] = a
	}

	var total float64
	orderItems := make([]models.OrderItem, 0, len(cart.Items))
	sessionItems := make([]SessionLineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		artwork, ok := byID[item.ArtworkID]
		if !ok || !artwork.ForSale || artwork.Price == nil {
			return nil, &ServiceError{
				StatusCode: 409,
				Message:    fmt.Sprintf("artwork %d is no longer for sale", item.ArtworkID),
			}
		}

		price := *artwork.Price
		total += price * float64(item.Quantity)

		orderItems = append(orderItems, models.OrderItem{
			ArtworkID: artwork.ID,
			Title:     artwork.Title,
			Image:     artwork.Image,
			Price:     price,
			Quantity:  item.Quantity,
		})
		sessionItems = append(sessionItems, SessionLineItem{
			Name:       artwork.Title,
			Image:      artwork.Image,
			UnitAmount: int64(math.Round(price * 100)),
			Quantity:   int64(item.Quantity),
		})
	}

	order := &models.Order{
		ID:              uuid.New(),
		UserID:          userID,
		TotalAmount:     total,
		Currency:        "eur",
		Status:          models.OrderStatusPending,
		ShippingAddress: address,
		Items:           orderItems,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "failed to create order"}
	}

	if email == "" {
		email = guestEmail
	}

	sess, err := s.sessions.CreateCheckoutSession(ctx, CheckoutSessionRequest{
		OrderID:    order.ID.String(),
		UserID:     userID,
		Email:      email,
		Currency:   order.Currency,
		SuccessURL: fmt.Sprintf("%s/payment-success?order_id=%s", s.baseURL, order.ID),
		CancelURL:  s.baseURL + "/checkout",
		LineItems:  sessionItems,
	})
	if err != nil {
		s.logger.Error("Failed to create checkout session",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: 500, Message: "failed to create checkout session"}
	}

	if err := s.orders.SetStripeSession(ctx, order.ID, sess.ID); err != nil {
		// The webhook can no longer correlate by session, but finalization
		// by order ID still works.
		s.logger.Warn("Failed to persist session ID on order",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
	}

	if s.events != nil {
		s.events.Publish(ctx, models.OrderEvent{
			Type:     models.OrderEventCreated,
			OrderID:  order.ID.String(),
			UserID:   userID,
			Amount:   total,
			Currency: order.Currency,
		})
	}

	return &CheckoutResult{OrderID: order.ID, URL: sess.URL}, nil
}
