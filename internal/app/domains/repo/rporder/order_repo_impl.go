package rporder

import (
	"context"
	"sync"

	"github.com/tahagaber/Capify-store/internal/app/domains/entity/etorder"
)

// OrderRepositoryImpl 规范集合仓储实现（进程内内存态）
// 写入方只有同步流水线和变更流水线，用读写锁串行化
type OrderRepositoryImpl struct {
	mu     sync.RWMutex
	orders []*etorder.Order
}

// NewOrderRepository 创建仓储实例
func NewOrderRepository() OrderRepository {
	return &OrderRepositoryImpl{
		orders: make([]*etorder.Order, 0),
	}
}

// Snapshot 返回集合的只读快照
func (r *OrderRepositoryImpl) Snapshot(ctx context.Context) []*etorder.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*etorder.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

// Replace 整体替换集合
func (r *OrderRepositoryImpl) Replace(ctx context.Context, orders []*etorder.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = orders
}

// GetByID 根据订单号查询
func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id string) (*etorder.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id = etorder.CleanID(id)
	for _, o := range r.orders {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

// UpsertFront 移除同订单号旧记录后插入队首
func (r *OrderRepositoryImpl) UpsertFront(ctx context.Context, order *etorder.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]*etorder.Order, 0, len(r.orders)+1)
	kept = append(kept, order)
	for _, o := range r.orders {
		if o.ID != order.ID {
			kept = append(kept, o)
		}
	}
	r.orders = kept
}

// Count 集合大小
func (r *OrderRepositoryImpl) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders)
}
