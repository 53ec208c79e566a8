package redis

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-redis/redis/v8"
	conf "github.com/yur1-dev/koka-backend/internal/config"
	"go.uber.org/zap"
	"time"
)

var ErrNotFoundInCache = errors.New("not found in cache")

type Cache struct {
	cli *redis.Client
}

func New(conf conf.RedisConfig) *Cache {
	cli := redis.NewClient(
		&redis.Options{
			Addr:     conf.Addr,
			Password: conf.Pass,
		},
	)

	if err := cli.Ping(context.Background()).Err(); err != nil {
		zap.L().Fatal("Failed to connect to redis", zap.Error(err))
	}

	return &Cache{cli: cli}
}

func (c *Cache) Close() error {
	return c.cli.Close()
}

func (c *Cache) GetToStruct(ctx context.Context, key string, dest any) error {
	val, err := c.cli.Get(ctx, key).Bytes()
	if err != nil && errors.Is(err, redis.Nil) {
		return ErrNotFoundInCache
	} else if err != nil {
		return err
	}

	if err = json.Unmarshal(val, dest); err != nil {
		return err
	}

	return nil
}

func (c *Cache) Set(ctx context.Context, t time.Duration, key string, val any) {
	bytes, err := json.Marshal(val)
	if err != nil {
		zap.L().Error("Failed to marshal cache value", zap.String("key", key), zap.Error(err))
		return
	}

	if err = c.cli.Set(ctx, key, bytes, t).Err(); err != nil {
		zap.L().Error("Failed to set cache value", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Delete(ctx context.Context, key string) {
	if err := c.cli.Del(ctx, key).Err(); err != nil {
		zap.L().Error("Failed to delete cache value", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) InvalidateKeysByPattern(ctx context.Context, pattern string) {
	iter := c.cli.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.cli.Del(ctx, iter.Val()).Err(); err != nil {
			zap.L().Error(
				"Failed to delete cache key",
				zap.String("key", iter.Val()), zap.Error(err),
			)
		}
	}

	if err := iter.Err(); err != nil {
		zap.L().Error(
			"Failed to iterate cache keys",
			zap.String("pattern", pattern), zap.Error(err),
		)
	}
}
