package redis

import (
	"context"
	"time"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type ServiceInterface interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	SetExpire(ctx context.Context, key string, ttl time.Duration) error
	GetTTL(ctx context.Context, key string) (time.Duration, error)

	CacheUserSession(ctx context.Context, sessionID string, userID string, ttl time.Duration) error
	GetUserSession(ctx context.Context, sessionID string) (string, error)
	DeleteUserSession(ctx context.Context, sessionID string) error

	CacheEnvironment(ctx context.Context, data interface{}, ttl time.Duration) error
	GetEnvironment(ctx context.Context, dest interface{}) error

	CacheCollection(ctx context.Context, uid string, data interface{}, ttl time.Duration) error
	GetCollection(ctx context.Context, uid string, dest interface{}) error
	InvalidateCollection(ctx context.Context, uid string) error

	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)

	Close() error
}
