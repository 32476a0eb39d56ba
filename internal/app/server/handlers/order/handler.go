package order

import "github.com/tahagaber/Capify-store/internal/app/domains/services/svorder"

// OrderHandler 订单 HTTP 处理器
type OrderHandler struct {
	orderService *svorder.OrderService
	countryCode  string
}

// NewOrderHandler 创建订单处理器实例
func NewOrderHandler(orderService *svorder.OrderService, countryCode string) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		countryCode:  countryCode,
	}
}
