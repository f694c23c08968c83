package models

import "time"

const (
	OrderEventCreated   = "order.created"
	OrderEventCompleted = "order.completed"
)

// OrderEvent is the payload published on order lifecycle changes.
type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}
