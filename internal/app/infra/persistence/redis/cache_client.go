package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tahagaber/Capify-store/internal/app/pkg/errorx"
)

// CacheClient Redis 字符串键值客户端（本地缓存层）
type CacheClient struct {
	client *redis.Client
}

// NewCacheClient 创建 CacheClient 实例
func NewCacheClient(addr, password string, db int) (*CacheClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// 测试连接
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &CacheClient{
		client: client,
	}, nil
}

// Get 读取指定键，键不存在返回 errorx.ErrCacheMiss
func (c *CacheClient) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errorx.ErrCacheMiss
		}
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// Set 写入指定键（不设过期：缓存始终保留最后一次成功同步的结果）
func (c *CacheClient) Set(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close 关闭 Redis 连接
func (c *CacheClient) Close() error {
	return c.client.Close()
}
