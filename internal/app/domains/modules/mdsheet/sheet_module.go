package mdsheet

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/tahagaber/Capify-store/internal/app/domains/entity/etorder"
	"github.com/tahagaber/Capify-store/internal/app/infra/sheet"
	"github.com/tahagaber/Capify-store/internal/app/pkg/logger"
)

// 变更动作（表格侧脚本约定）
const (
	ActionAddOrder    = "addOrder"
	ActionUpdateOrder = "updateOrder"
)

const pushTimeout = 15 * time.Second

// SheetModule 表格数据源模块
// 职责：
// 1. 组装表格 API 客户端
// 2. 变更请求的双语字段展开规则（表格列名存在两种语言/带引号变体，
//    两套键名都带上以兼容远端 schema）
type SheetModule struct {
	client *sheet.Client
	logger logger.Logger
}

// NewSheetModule 创建表格模块实例
func NewSheetModule(client *sheet.Client, log logger.Logger) *SheetModule {
	return &SheetModule{
		client: client,
		logger: log,
	}
}

// FetchRows 拉取全部原始订单行
func (m *SheetModule) FetchRows(ctx context.Context) ([]sheet.Row, error) {
	return m.client.FetchRows(ctx)
}

// PushOrderAsync 异步推送订单变更（fire-and-forget）
// 结果不回传给调用方：失败只记日志，本地乐观状态保持不变，
// 等待下一次整表同步收敛
func (m *SheetModule) PushOrderAsync(order *etorder.Order, action string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		ctx = context.WithValue(ctx, "trace_id", uuid.New().String())
		ctx = context.WithValue(ctx, "action_type", action)

		params := buildParams(order, action)
		if err := m.client.Push(ctx, params); err != nil {
			m.logger.Errorf(ctx, "[Sheet] push order failed: id=%s, error=%v", order.ID, err)
			return
		}

		m.logger.Infof(ctx, "[Sheet] order pushed: id=%s", order.ID)
	}()
}

// buildParams 构造变更请求参数（双语字段展开）
func buildParams(order *etorder.Order, action string) url.Values {
	params := url.Values{}
	params.Set("action", action)
	params.Set("id", order.ID)
	params.Set("timestamp", order.Timestamp)

	// 每个字段同时携带规范键名与本地化键名（含带引号变体）
	fields := []struct {
		keys  []string
		value string
	}{
		{[]string{"customer", "اسم العميل", `"customer"`}, order.Customer},
		{[]string{"phone", "رقم الهاتف"}, order.Phone},
		{[]string{"address", "العنوان"}, order.Address},
		{[]string{"content", "المنتج"}, order.Content},
		{[]string{"size", "المقاس"}, order.Size},
		{[]string{"qty", "الكمية"}, order.Qty},
		{[]string{"total", "الإجمالي", `"total payment"`}, order.Total},
		{[]string{"status", "الحالة"}, order.Status},
		{[]string{"payment", "وسيلة الدفع"}, order.Payment},
	}
	for _, f := range fields {
		for _, k := range f.keys {
			params.Set(k, f.value)
		}
	}

	return params
}
