package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jorotodorovv/art-on-display/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CartStore persists one cart per user.
type CartStore interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, userID string) error
}

// RedisCartStore keeps each cart as a JSON blob under cart:user:<id>.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCartStore {
	return &RedisCartStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *RedisCartStore) key(userID string) string {
	return fmt.Sprintf("cart:user:%s", userID)
}

// Get returns the user's cart. A missing key or an unparseable payload both
// yield an empty cart; a corrupted cart must never block the storefront.
func (r *RedisCartStore) Get(ctx context.Context, userID string) (*models.Cart, error) {
	data, err := r.client.Get(ctx, r.key(userID)).Result()
	if err == redis.Nil {
		return &models.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}

	cart, ok := decodeCart([]byte(data))
	if !ok {
		r.logger.Warn("Discarding corrupted cart payload", zap.String("user_id", userID))
		return &models.Cart{UserID: userID}, nil
	}
	cart.UserID = userID
	return cart, nil
}

// Save serializes the full cart. Every mutation goes through here.
func (r *RedisCartStore) Save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.key(cart.UserID), data, r.ttl).Err()
}

// Delete removes the user's cart.
func (r *RedisCartStore) Delete(ctx context.Context, userID string) error {
	return r.client.Del(ctx, r.key(userID)).Err()
}

func decodeCart(data []byte) (*models.Cart, bool) {
	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, false
	}
	return &cart, true
}
