package etorder

import (
	"strings"
	"time"

	"github.com/tahagaber/Capify-store/internal/app/pkg/numx"
	"github.com/tahagaber/Capify-store/internal/app/pkg/timex"
)

// Order 订单（领域对象）
// 字段保持表格原始字符串形态，数值解析延迟到消费方
// （聚合/展示），JSON tag 与前端缓存格式保持一致
type Order struct {
	ID        string `json:"id"`        // 订单号（已去掉前导 # 与空白）
	Timestamp string `json:"timestamp"` // 表格时间戳（可能为 locale 格式）
	Customer  string `json:"customer"`  // 客户姓名（非空，入库前已过滤）
	Phone     string `json:"phone"`     // 电话
	Address   string `json:"address"`   // 地址（用于地区归类）
	Content   string `json:"content"`   // 商品描述
	Size      string `json:"size"`      // 规格
	Qty       string `json:"qty"`       // 数量（数字样式字符串）
	Total     string `json:"total"`     // 金额（数字样式字符串）
	Status    string `json:"status"`    // 状态（已知枚举或原样透传）
	Payment   string `json:"payment"`   // 支付方式
}

// CleanID 规整订单号：去掉前导 # 与两端空白
func CleanID(id string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(id), "#"))
}

// Time 解析订单时间戳，无法解析时为零值（视为最旧）
func (o *Order) Time() time.Time {
	return timex.Parse(o.Timestamp)
}

// TotalValue 解析订单金额，解析失败按 0 计
func (o *Order) TotalValue() float64 {
	return numx.ParseFloat(o.Total)
}

// IsCancelled 是否已取消
func (o *Order) IsCancelled() bool {
	return o.Status == StatusCancelled
}

// IsCompleted 是否已完成
func (o *Order) IsCompleted() bool {
	return o.Status == StatusCompleted
}

// IsValid 有效订单：未取消的订单（所有营收类聚合的口径）
func (o *Order) IsValid() bool {
	return !o.IsCancelled()
}

// IsActive 进行中订单：既未完成也未取消
func (o *Order) IsActive() bool {
	return !o.IsCompleted() && !o.IsCancelled()
}
