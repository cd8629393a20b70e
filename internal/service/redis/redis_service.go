package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Service struct {
	client *redis.Client
}

func NewRedisService(config RedisConfig) *Service {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	ctx := context.Background()
	_, err := client.Ping(ctx).Result()
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		return nil
	}

	log.Printf("✅ Connected to Redis at %s:%s", config.Host, config.Port)
	return &Service{client: client}
}

func (r *Service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return r.client.Set(ctx, key, jsonValue, ttl).Err()
}

func (r *Service) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("key not found: %s", key)
		}
		return fmt.Errorf("failed to get value: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func (r *Service) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *Service) Exists(ctx context.Context, key string) (bool, error) {
	result, err := r.client.Exists(ctx, key).Result()
	return result > 0, err
}

func (r *Service) SetExpire(ctx context.Context, key string, ttl time.Duration) error {
	return r.client.Expire(ctx, key, ttl).Err()
}

func (r *Service) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, key).Result()
}

func (r *Service) CacheUserSession(ctx context.Context, sessionID string, userID string, ttl time.Duration) error {
	sessionData := map[string]interface{}{
		"user_id":    userID,
		"created_at": time.Now().Unix(),
	}

	key := fmt.Sprintf("session:%s", sessionID)
	return r.Set(ctx, key, sessionData, ttl)
}

func (r *Service) GetUserSession(ctx context.Context, sessionID string) (string, error) {
	key := fmt.Sprintf("session:%s", sessionID)

	var sessionData map[string]interface{}
	err := r.Get(ctx, key, &sessionData)
	if err != nil {
		return "", err
	}

	userID, ok := sessionData["user_id"].(string)
	if !ok {
		return "", fmt.Errorf("invalid user_id in session")
	}

	return userID, nil
}

func (r *Service) DeleteUserSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf("session:%s", sessionID)
	return r.Delete(ctx, key)
}

func (r *Service) CacheEnvironment(ctx context.Context, data interface{}, ttl time.Duration) error {
	return r.Set(ctx, "environment:lists", data, ttl)
}

func (r *Service) GetEnvironment(ctx context.Context, dest interface{}) error {
	return r.Get(ctx, "environment:lists", dest)
}

func (r *Service) CacheCollection(ctx context.Context, uid string, data interface{}, ttl time.Duration) error {
	key := fmt.Sprintf("collection:%s", uid)
	return r.Set(ctx, key, data, ttl)
}

func (r *Service) GetCollection(ctx context.Context, uid string, dest interface{}) error {
	key := fmt.Sprintf("collection:%s", uid)
	return r.Get(ctx, key, dest)
}

func (r *Service) InvalidateCollection(ctx context.Context, uid string) error {
	key := fmt.Sprintf("collection:%s", uid)
	return r.Delete(ctx, key)
}

func (r *Service) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	pipe := r.client.Pipeline()

	incr := pipe.Incr(ctx, key)

	pipe.Expire(ctx, key, window)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return false, err
	}

	count := incr.Val()
	return count <= int64(limit), nil
}

func (r *Service) Close() error {
	return r.client.Close()
}
