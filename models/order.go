package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// ShippingAddress is collected at checkout. Validation tags mirror the
// minimum lengths the storefront form enforces.
type ShippingAddress struct {
	FullName   string `json:"full_name" validate:"required,min=3"`
	Address    string `json:"address" validate:"required,min=5"`
	City       string `json:"city" validate:"required,min=2"`
	PostalCode string `json:"postal_code" validate:"required,min=3"`
	Country    string `json:"country" validate:"required,min=2"`
	Phone      string `json:"phone" validate:"required,min=5"`
	Notes      string `json:"notes,omitempty"`
}

// Order is a persisted checkout attempt. Status only ever moves from
// pending to completed; CanceledAt exists for the cancelled status but no
// flow sets it yet.
type Order struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          string          `gorm:"not null;index" json:"user_id"`
	TotalAmount     float64         `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	Currency        string          `gorm:"type:varchar(10);not null;default:'eur'" json:"currency"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	StripeSessionID *string         `gorm:"uniqueIndex" json:"-"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	CanceledAt      *time.Time      `json:"canceled_at,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is one artwork line on an order, snapshotted at creation time.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ArtworkID uint      `gorm:"not null" json:"artwork_id"`
	Title     string    `gorm:"not null" json:"title"`
	Image     string    `json:"image"`
	Price     float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
}

// ArtworkIDs returns the distinct artwork IDs referenced by the order.
func (o *Order) ArtworkIDs() []uint {
	seen := make(map[uint]bool, len(o.Items))
	ids := make([]uint, 0, len(o.Items))
	for _, item := range o.Items {
		if !seen[item.ArtworkID] {
			seen[item.ArtworkID] = true
			ids = append(ids, item.ArtworkID)
		}
	}
	return ids
}
