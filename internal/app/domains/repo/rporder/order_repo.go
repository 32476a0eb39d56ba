package rporder

import (
	"context"

	"github.com/tahagaber/Capify-store/internal/app/domains/entity/etorder"
)

// OrderRepository 规范集合仓储接口（只定义，不实现）
// 规范集合 = 去重后按时间降序排列的订单全集，
// 是所有渲染与聚合的唯一事实来源
type OrderRepository interface {
	// Snapshot 返回集合的只读快照（调用方不得修改元素）
	Snapshot(ctx context.Context) []*etorder.Order

	// Replace 整体替换集合（一次赋值完成，调用方看不到半更新状态）
	Replace(ctx context.Context, orders []*etorder.Order)

	// GetByID 根据订单号查询
	GetByID(ctx context.Context, id string) (*etorder.Order, bool)

	// UpsertFront 乐观应用本地变更：
	// 移除同订单号的旧记录，将新记录插入队首
	// （有意打破时间降序，使变更立即可见；下次整表同步会重新排序）
	UpsertFront(ctx context.Context, order *etorder.Order)

	// Count 集合大小
	Count(ctx context.Context) int
}
