package response

import (
	"github.com/tahagaber/Capify-store/internal/app/domains/entity/etorder"
	"github.com/tahagaber/Capify-store/internal/app/pkg/walink"
)

// OrderResponse 订单响应（DTO）
type OrderResponse struct {
	ID          string             `json:"id"`
	Timestamp   string             `json:"timestamp"`
	Customer    string             `json:"customer"`
	Phone       string             `json:"phone"`
	Address     string             `json:"address"`
	Content     string             `json:"content"`
	Size        string             `json:"size"`
	Qty         string             `json:"qty"`
	Total       string             `json:"total"`
	Status      string             `json:"status"`
	StatusInfo  etorder.StatusInfo `json:"status_info"`
	Payment     string             `json:"payment"`
	WhatsAppURL string             `json:"whatsapp_url,omitempty"`
}

// OrderListResponse 订单列表响应
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// FromOrderEntity 领域对象转响应 DTO
func FromOrderEntity(o *etorder.Order, countryCode string) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		Timestamp:   o.Timestamp,
		Customer:    o.Customer,
		Phone:       o.Phone,
		Address:     o.Address,
		Content:     o.Content,
		Size:        o.Size,
		Qty:         o.Qty,
		Total:       o.Total,
		Status:      o.Status,
		StatusInfo:  etorder.InfoForStatus(o.Status),
		Payment:     o.Payment,
		WhatsAppURL: walink.URL(o.Phone, countryCode),
	}
}

// FromOrderEntities 批量转换
func FromOrderEntities(orders []*etorder.Order, countryCode string) OrderListResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrderEntity(o, countryCode))
	}
	return OrderListResponse{
		Orders: out,
		Total:  len(out),
	}
}
