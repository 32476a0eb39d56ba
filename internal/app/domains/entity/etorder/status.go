package etorder

// 订单状态（表格中的原始阿拉伯语取值）
const (
	StatusPending   = "قيد الانتظار" // 待处理
	StatusPrinting  = "جاري الطباعة" // 打印中
	StatusColoring  = "جاري التلوين" // 上色中
	StatusShipped   = "تم الشحن"     // 已发货
	StatusCompleted = "مكتمل"        // 已完成
	StatusCancelled = "ملغي"         // 已取消
)

// 缺省值（字段解析不到时使用；客户姓名没有缺省值，
// 解析不到的行在入库前即被过滤）
const (
	DefaultPayment = "عند الاستلام" // 货到付款
	DefaultStatus  = StatusPending
	SentinelID     = "N/A"
)

// StatusInfo 状态展示元数据（供前端渲染状态徽标）
type StatusInfo struct {
	Label string `json:"label"` // 展示文案
	Icon  string `json:"icon"`  // material symbols 图标名
	Color string `json:"color"` // 主题色
}

var statusInfoMap = map[string]StatusInfo{
	StatusPending:   {Label: "بانتظار المراجعة", Icon: "schedule", Color: "#fbbf24"},
	StatusPrinting:  {Label: "جاري الطباعة", Icon: "print", Color: "#f97316"},
	StatusColoring:  {Label: "مرحلة التلوين", Icon: "palette", Color: "#ec4899"},
	StatusShipped:   {Label: "خرج للشحن", Icon: "local_shipping", Color: "#3b82f6"},
	StatusCompleted: {Label: "تم التسليم", Icon: "check_circle", Color: "#10b981"},
	StatusCancelled: {Label: "طلب ملغي", Icon: "cancel", Color: "#f43f5e"},
}

// InfoForStatus 返回状态展示元数据
// 未知状态不丢弃：原样透传文案并使用兜底样式
func InfoForStatus(status string) StatusInfo {
	if info, ok := statusInfoMap[status]; ok {
		return info
	}
	return StatusInfo{Label: status, Icon: "help", Color: "#94a3b8"}
}
