package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/banking/pkg/cache"
	"github.com/amirasaad/banking/pkg/domain/kyc"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisKYCCache implements cache.KYCCache using Redis.
type RedisKYCCache struct {
	client redis.UniversalClient
	prefix string
	logger *slog.Logger
}

// NewRedisKYCCache wraps an existing client.
func NewRedisKYCCache(client redis.UniversalClient, prefix string, logger *slog.Logger) *RedisKYCCache {
	return &RedisKYCCache{client: client, prefix: prefix, logger: logger}
}

// NewRedisKYCCacheWithOptions creates a new RedisKYCCache from redis.Options.
func NewRedisKYCCacheWithOptions(opt *redis.Options, prefix string, logger *slog.Logger) *RedisKYCCache {
	return NewRedisKYCCache(redis.NewClient(opt), prefix, logger)
}

func (r *RedisKYCCache) key(userID uuid.UUID) string {
	return r.prefix + "kyc:" + userID.String()
}

func (r *RedisKYCCache) Get(ctx context.Context, userID uuid.UUID) (*kyc.Profile, error) {
	val, err := r.client.Get(ctx, r.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "user_id", userID)
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Redis cache get error", "user_id", userID, "error", err)
		return nil, err
	}
	var entry profileEntry
	if err := json.Unmarshal(val, &entry); err != nil {
		r.logger.Error("Redis cache unmarshal error", "user_id", userID, "error", err)
		return nil, err
	}
	r.logger.Debug("Redis cache hit", "user_id", userID)
	return entry.profile(), nil
}

func (r *RedisKYCCache) Set(ctx context.Context, p *kyc.Profile, ttl time.Duration) error {
	data, err := json.Marshal(toEntry(p))
	if err != nil {
		r.logger.Error("Redis cache marshal error", "user_id", p.UserID, "error", err)
		return err
	}
	if err := r.client.Set(ctx, r.key(p.UserID), data, ttl).Err(); err != nil {
		r.logger.Error("Redis cache set error", "user_id", p.UserID, "error", err)
		return err
	}
	r.logger.Debug("Redis cache set", "user_id", p.UserID, "ttl", ttl)
	return nil
}

func (r *RedisKYCCache) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := r.client.Del(ctx, r.key(userID)).Err(); err != nil {
		r.logger.Error("Redis cache delete error", "user_id", userID, "error", err)
		return err
	}
	r.logger.Debug("Redis cache delete", "user_id", userID)
	return nil
}

// Ping checks connectivity; used at startup to fall back to the memory cache.
func (r *RedisKYCCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisKYCCache) Close() error {
	return r.client.Close()
}

var _ cache.KYCCache = (*RedisKYCCache)(nil)
