package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func sessionKey(token string) string { return "session:" + token }

func (s *RedisStore) Issue(ctx context.Context, id Identity) (string, error) {
	token := uuid.NewString()
	data, err := json.Marshal(id)
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, sessionKey(token), data, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (*Identity, error) {
	val, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, err
	}
	var id Identity
	if err := json.Unmarshal([]byte(val), &id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

func (s *RedisStore) Close() error { return s.client.Close() }
