package services

import (
	"context"
	"errors"

	"github.com/jorotodorovv/art-on-display/database"
	"github.com/jorotodorovv/art-on-display/models"
	"github.com/jorotodorovv/art-on-display/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FinalizerService reconciles a confirmed payment with internal state: the
// order becomes completed and its artworks leave the for-sale listing, both
// inside one transaction. Repeat invocations for the same order are no-ops.
type FinalizerService struct {
	orders repository.OrderRepository
	carts  database.CartStore
	events OrderEventSink
	logger *zap.Logger
}

func NewFinalizerService(orders repository.OrderRepository, carts database.CartStore, events OrderEventSink, logger *zap.Logger) *FinalizerService {
	return &FinalizerService{
		orders: orders,
		carts:  carts,
		events: events,
		logger: logger,
	}
}

// FinalizeOrder completes the order with the given ID.
func (s *FinalizerService) FinalizeOrder(ctx context.Context, orderID uuid.UUID) *ServiceError {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "order not found"}
		}
		s.logger.Error("Failed to load order", zap.String("order_id", orderID.String()), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "failed to load order"}
	}
	return s.finalize(ctx, order)
}

// FinalizeBySession completes the order tied to a Stripe checkout session.
// Used by the webhook path.
func (s *FinalizerService) FinalizeBySession(ctx context.Context, sessionID string) *ServiceError {
	order, err := s.orders.FindByStripeSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "order not found"}
		}
		s.logger.Error("Failed to load order for session", zap.String("session_id", sessionID), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "failed to load order"}
	}
	return s.finalize(ctx, order)
}

func (s *FinalizerService) finalize(ctx context.Context, order *models.Order) *ServiceError {
	if order.Status == models.OrderStatusCompleted {
		s.logger.Info("Order already completed, skipping",
			zap.String("order_id", order.ID.String()),
		)
		return nil
	}

	if err := s.orders.Complete(ctx, order.ID, order.ArtworkIDs()); err != nil {
		s.logger.Error("Failed to complete order",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
		return &ServiceError{StatusCode: 500, Message: "failed to complete order"}
	}

	// The purchase is done; the buyer's cart contents are stale now.
	if s.carts != nil {
		if err := s.carts.Delete(ctx, order.UserID); err != nil {
			s.logger.Warn("Failed to clear cart after purchase",
				zap.String("user_id", order.UserID),
				zap.Error(err),
			)
		}
	}

	if s.events != nil {
		s.events.Publish(ctx, models.OrderEvent{
			Type:     models.OrderEventCompleted,
			OrderID:  order.ID.String(),
			UserID:   order.UserID,
			Amount:   order.TotalAmount,
			Currency: order.Currency,
		})
	}

	return nil
}
