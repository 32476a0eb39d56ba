package mdcache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tahagaber/Capify-store/internal/app/domains/entity/etorder"
)

// CacheKey 规范集合的固定缓存键（沿用前端 localStorage 键名）
const CacheKey = "capify_store_orders_cache"

// KVStore 字符串键值存储接口（Redis 适配器）
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// CacheModule 本地缓存模块
// 职责：
// 1. 规范集合的 JSON 序列化/反序列化
// 2. 缓存键命名规则
type CacheModule struct {
	store KVStore
}

// NewCacheModule 创建缓存模块实例
func NewCacheModule(store KVStore) *CacheModule {
	return &CacheModule{store: store}
}

// LoadOrders 读取缓存的规范集合
// 键不存在或内容损坏时返回错误，由调用方记日志并保持原状态
func (m *CacheModule) LoadOrders(ctx context.Context) ([]*etorder.Order, error) {
	raw, err := m.store.Get(ctx, CacheKey)
	if err != nil {
		return nil, err
	}

	var orders []*etorder.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, fmt.Errorf("decode cached orders: %w", err)
	}

	return orders, nil
}

// SaveOrders 覆盖写入规范集合
func (m *CacheModule) SaveOrders(ctx context.Context, orders []*etorder.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}

	return m.store.Set(ctx, CacheKey, string(raw))
}
