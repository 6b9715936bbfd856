package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"fashion_store_back_end/internal/apperrors"
	"fashion_store_back_end/internal/models"
)

const cartTTL = 30 * 24 * time.Hour

// RemoteStore : le grand livre distant qui fait autorité quand il est joignable.
type RemoteStore interface {
	Get(ctx context.Context, userID string) (models.Cart, error)
	Set(ctx context.Context, userID string, cart models.Cart) error
	Delete(ctx context.Context, userID string) error
}

// RedisStore persiste le panier en JSON sous "cart:<userID>" (TTL 30 jours).
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(userID string) string { return "cart:" + userID }

func (s *RedisStore) Get(ctx context.Context, userID string) (models.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return models.Cart{}, nil
	}
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "redis.get", Err: err}
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, &apperrors.NetworkError{Op: "redis.decode", Err: err}
	}
	return cart, nil
}

func (s *RedisStore) Set(ctx context.Context, userID string, cart models.Cart) error {
	jsonData, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, cartKey(userID), jsonData, cartTTL).Err(); err != nil {
		return &apperrors.NetworkError{Op: "redis.set", Err: err}
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return &apperrors.NetworkError{Op: "redis.del", Err: err}
	}
	return nil
}
