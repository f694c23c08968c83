package services

import (
	"context"
	"testing"

	"github.com/jorotodorovv/art-on-display/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetUserOrders(t *testing.T) {
	orders := newFakeOrderRepo()
	svc := NewOrderService(orders, zap.NewNop())

	mine := &models.Order{ID: uuid.New(), UserID: "user-1", TotalAmount: 10.00}
	theirs := &models.Order{ID: uuid.New(), UserID: "user-2", TotalAmount: 99.00}
	orders.orders[mine.ID] = mine
	orders.orders[theirs.ID] = theirs

	got, svcErr := svc.GetUserOrders(context.Background(), "user-1")
	require.Nil(t, svcErr)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)
}

func TestGetOrderByID(t *testing.T) {
	orders := newFakeOrderRepo()
	svc := NewOrderService(orders, zap.NewNop())

	order := &models.Order{ID: uuid.New(), UserID: "user-1"}
	orders.orders[order.ID] = order

	got, svcErr := svc.GetOrderByID(context.Background(), "user-1", order.ID)
	require.Nil(t, svcErr)
	assert.Equal(t, order.ID, got.ID)
}

func TestGetOrderByIDScopedToOwner(t *testing.T) {
	orders := newFakeOrderRepo()
	svc := NewOrderService(orders, zap.NewNop())

	order := &models.Order{ID: uuid.New(), UserID: "user-1"}
	orders.orders[order.ID] = order

	// Another user's order reads as not found, never as forbidden.
	got, svcErr := svc.GetOrderByID(context.Background(), "user-2", order.ID)
	assert.Nil(t, got)
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
