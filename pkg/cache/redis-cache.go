package cache

import (
	"context"
	"strings"
	"time"

	"github.com/rajit909/portfolio-api/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	var client *redis.Client
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch cfg.Type {
	case "NORMAL":
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addrs,
			Password: cfg.Password,
		})
	case "SENTINEL":
		client = redis.NewFailoverClient(&redis.FailoverOptions{
			SentinelAddrs: strings.Split(cfg.Addrs, " "),
			MasterName:    cfg.MasterName,
			Password:      cfg.Password,
			ReadTimeout:   100 * time.Millisecond,
		})
	default:
		zap.S().Errorf("Invalid Redis type: %s. Must be 'NORMAL' or 'SENTINEL'.", cfg.Type)
		return nil
	}
	if _, err := client.Ping(ctx).Result(); err != nil {
		zap.L().Error("Failed to connect to Redis", zap.Error(err))
		return nil
	}

	zap.L().Info("Connected to Redis!!!")
	return client
}

// RedisCache is the Redis-backed Cache implementation.
type RedisCache struct {
	client     *redis.Client
	defaultTTL time.Duration
	logger     *zap.Logger
}

func NewRedisCache(client *redis.Client, defaultTTLSeconds int) *RedisCache {
	if defaultTTLSeconds <= 0 {
		defaultTTLSeconds = 300
	}
	return &RedisCache{
		client:     client,
		defaultTTL: time.Duration(defaultTTLSeconds) * time.Second,
		logger:     zap.L(),
	}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("Redis GET failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := r.client.Set(ctx, key, value, r.defaultTTL).Err(); err != nil {
		r.logger.Warn("Redis SET failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *RedisCache) SetWithTTL(ctx context.Context, key string, value []byte, ttlSeconds int) {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = r.defaultTTL
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Warn("Redis SET failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *RedisCache) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Warn("Redis DEL failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *RedisCache) DeletePrefix(ctx context.Context, prefix string) {
	iter := r.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.logger.Warn("Redis SCAN failed", zap.String("prefix", prefix), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warn("Redis DEL failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
