package repository

import (
	"context"
	"time"

	"github.com/jorotodorovv/art-on-display/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Order, error)
	FindByIDAndUserID(ctx context.Context, id uuid.UUID, userID string) (*models.Order, error)
	SetStripeSession(ctx context.Context, id uuid.UUID, sessionID string) error
	FindByStripeSession(ctx context.Context, sessionID string) (*models.Order, error)
	Complete(ctx context.Context, id uuid.UUID, artworkIDs []uint) error
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByUserID retrieves all orders for a user, newest first. The order
// history view is unpaginated.
func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByIDAndUserID(ctx context.Context, id uuid.UUID, userID string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) SetStripeSession(ctx context.Context, id uuid.UUID, sessionID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("stripe_session_id", sessionID).Error
}

func (r *GormOrderRepository) FindByStripeSession(ctx context.Context, sessionID string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("stripe_session_id = ?", sessionID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Complete marks the order completed and clears the sale state of its
// artworks in a single transaction. Either both updates commit or neither
// does; a crash can no longer leave a completed order with purchasable
// artworks.
func (r *GormOrderRepository) Complete(ctx context.Context, id uuid.UUID, artworkIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&models.Order{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":       models.OrderStatusCompleted,
				"completed_at": &now,
			}).Error; err != nil {
			return err
		}

		if len(artworkIDs) > 0 {
			if err := tx.Model(&models.Artwork{}).
				Where("id IN ?", artworkIDs).
				Updates(map[string]interface{}{
					"for_sale": false,
					"price":    nil,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
