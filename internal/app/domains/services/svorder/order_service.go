package svorder

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/tahagaber/Capify-store/internal/app/domains/entity/etorder"
	"github.com/tahagaber/Capify-store/internal/app/domains/modules/mdsheet"
	"github.com/tahagaber/Capify-store/internal/app/domains/repo/rporder"
	"github.com/tahagaber/Capify-store/internal/app/domains/services/svingest"
	"github.com/tahagaber/Capify-store/internal/app/domains/services/svreport"
	"github.com/tahagaber/Capify-store/internal/app/pkg/errorx"
	"github.com/tahagaber/Capify-store/internal/app/pkg/idgen"
	"github.com/tahagaber/Capify-store/internal/app/pkg/logger"
	"github.com/tahagaber/Capify-store/internal/app/pkg/timex"
)

// SheetPusher 变更推送接口（mdsheet 适配）
type SheetPusher interface {
	PushOrderAsync(order *etorder.Order, action string)
}

// SaveInput 订单保存输入（表单字段 + 可选的既有订单号）
type SaveInput struct {
	ID       string
	Customer string
	Phone    string
	Address  string
	Content  string
	Size     string
	Qty      string
	Total    string
	Status   string
	Payment  string
}

// OrderService 订单服务：规范集合的读模型 + 变更流水线
type OrderService struct {
	store   rporder.OrderRepository
	cache   svingest.OrderCache
	pusher  SheetPusher
	reports *svreport.ReportService
	logger  logger.Logger
}

// NewOrderService 创建订单服务实例
func NewOrderService(
	store rporder.OrderRepository,
	cache svingest.OrderCache,
	pusher SheetPusher,
	reports *svreport.ReportService,
	log logger.Logger,
) *OrderService {
	return &OrderService{
		store:   store,
		cache:   cache,
		pusher:  pusher,
		reports: reports,
		logger:  log,
	}
}

// ListOrders 按搜索词与状态过滤规范集合
// 搜索词对客户姓名/电话/订单号做不区分大小写的子串匹配；
// 状态为精确匹配，空或 "all" 表示不过滤；limit<=0 表示不限制
func (s *OrderService) ListOrders(ctx context.Context, query, status string, limit int) []*etorder.Order {
	orders := s.store.Snapshot(ctx)
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]*etorder.Order, 0, len(orders))
	for _, o := range orders {
		if status != "" && status != "all" && o.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(o.Customer), query) &&
			!strings.Contains(o.Phone, query) &&
			!strings.Contains(strings.ToLower(o.ID), query) {
			continue
		}
		out = append(out, o)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// GetOrder 根据订单号查询
func (s *OrderService) GetOrder(ctx context.Context, id string) (*etorder.Order, error) {
	o, ok := s.store.GetByID(ctx, id)
	if !ok {
		return nil, errorx.ErrOrderNotFound
	}
	return o, nil
}

// SaveOrder 保存订单（创建或更新的完整业务流程）
// 1. 判定创建/更新：订单号缺失或为哨兵值视为创建
// 2. 创建：生成随机 4 位订单号并盖当前时间戳；
//    更新：沿用集合中既有记录的时间戳，找不到则盖当前时间
// 3. 乐观应用：移除同订单号旧记录并插入队首（立即可见）
// 4. 持久化缓存、重算聚合
// 5. 异步推送到表格（fire-and-forget）
func (s *OrderService) SaveOrder(ctx context.Context, input SaveInput) (*etorder.Order, error) {
	if strings.TrimSpace(input.Customer) == "" {
		return nil, errorx.ErrEmptyCustomer
	}

	id := etorder.CleanID(input.ID)
	isEdit := id != "" && id != etorder.SentinelID

	action := mdsheet.ActionUpdateOrder
	timestamp := timex.NowStamp()
	if isEdit {
		if existing, ok := s.store.GetByID(ctx, id); ok {
			timestamp = existing.Timestamp
		}
	} else {
		action = mdsheet.ActionAddOrder
		id = idgen.OrderID(func(candidate string) bool {
			_, taken := s.store.GetByID(ctx, candidate)
			return taken
		})
	}

	order := &etorder.Order{
		ID:        id,
		Timestamp: timestamp,
		Customer:  strings.TrimSpace(input.Customer),
		Phone:     input.Phone,
		Address:   input.Address,
		Content:   input.Content,
		Size:      input.Size,
		Qty:       defaultIfEmpty(input.Qty, "1"),
		Total:     defaultIfEmpty(input.Total, "0"),
		Status:    defaultIfEmpty(input.Status, etorder.DefaultStatus),
		Payment:   defaultIfEmpty(input.Payment, etorder.DefaultPayment),
	}

	ctx = context.WithValue(ctx, "trace_id", uuid.New().String())
	ctx = context.WithValue(ctx, "action_type", action)

	// 乐观应用：先改本地，再异步同步远端
	s.store.UpsertFront(ctx, order)

	if err := s.cache.SaveOrders(ctx, s.store.Snapshot(ctx)); err != nil {
		s.logger.Errorf(ctx, "[Order] cache save failed: %v", err)
	}
	s.reports.Recompute(ctx)

	s.pusher.PushOrderAsync(order, action)

	s.logger.Infof(ctx, "[Order] saved locally: id=%s, action=%s", order.ID, action)
	return order, nil
}

// defaultIfEmpty 空白字符串回退到缺省值
func defaultIfEmpty(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
