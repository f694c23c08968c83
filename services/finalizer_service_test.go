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

func newFinalizerFixture() (*FinalizerService, *fakeOrderRepo, *fakeCartStore, *fakeEventSink) {
	orders := newFakeOrderRepo()
	carts := newFakeCartStore()
	events := &fakeEventSink{}
	svc := NewFinalizerService(orders, carts, events, zap.NewNop())
	return svc, orders, carts, events
}

func pendingOrder(userID string) *models.Order {
	return &models.Order{
		ID:          uuid.New(),
		UserID:      userID,
		TotalAmount: 35.50,
		Currency:    "eur",
		Status:      models.OrderStatusPending,
		Items: []models.OrderItem{
			{ArtworkID: 1, Title: "Sunset", Price: 10.00, Quantity: 1},
			{ArtworkID: 2, Title: "Harbor", Price: 25.50, Quantity: 1},
		},
	}
}

func TestFinalizeOrder(t *testing.T) {
	svc, orders, carts, events := newFinalizerFixture()

	order := pendingOrder("user-1")
	orders.orders[order.ID] = order
	carts.carts["user-1"] = &models.Cart{UserID: "user-1", Items: []models.CartItem{{ArtworkID: 1, Quantity: 1}}}

	svcErr := svc.FinalizeOrder(context.Background(), order.ID)
	require.Nil(t, svcErr)

	// Only the artworks on this order are delisted.
	assert.Equal(t, []uint{1, 2}, orders.completed[order.ID])
	assert.Equal(t, models.OrderStatusCompleted, order.Status)

	assert.Equal(t, []string{"user-1"}, carts.deleted)

	require.Len(t, events.events, 1)
	assert.Equal(t, models.OrderEventCompleted, events.events[0].Type)
	assert.Equal(t, order.ID.String(), events.events[0].OrderID)
}

func TestFinalizeOrderNotFound(t *testing.T) {
	svc, _, _, _ := newFinalizerFixture()

	svcErr := svc.FinalizeOrder(context.Background(), uuid.New())
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestFinalizeOrderIdempotent(t *testing.T) {
	svc, orders, carts, events := newFinalizerFixture()

	order := pendingOrder("user-1")
	order.Status = models.OrderStatusCompleted
	orders.orders[order.ID] = order

	svcErr := svc.FinalizeOrder(context.Background(), order.ID)
	require.Nil(t, svcErr)

	// The second arrival does nothing.
	assert.Empty(t, orders.completed)
	assert.Empty(t, carts.deleted)
	assert.Empty(t, events.events)
}

func TestFinalizeOrderCompleteFails(t *testing.T) {
	svc, orders, carts, events := newFinalizerFixture()

	order := pendingOrder("user-1")
	orders.orders[order.ID] = order
	orders.completeErr = errDatabaseDown

	svcErr := svc.FinalizeOrder(context.Background(), order.ID)
	require.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)

	assert.Empty(t, carts.deleted)
	assert.Empty(t, events.events)
}

func TestFinalizeBySession(t *testing.T) {
	svc, orders, _, _ := newFinalizerFixture()

	order := pendingOrder("user-1")
	orders.orders[order.ID] = order
	orders.sessions[order.ID] = "cs_test_123"

	svcErr := svc.FinalizeBySession(context.Background(), "cs_test_123")
	require.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
}

func TestFinalizeBySessionUnknown(t *testing.T) {
	svc, _, _, _ := newFinalizerFixture()

	svcErr := svc.FinalizeBySession(context.Background(), "cs_missing")
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
