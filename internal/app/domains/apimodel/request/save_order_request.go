package request

import "github.com/tahagaber/Capify-store/internal/app/domains/services/svorder"

// SaveOrderRequest 保存订单请求（创建或更新）
// ID 为空或 "N/A" 时视为创建，否则为更新
type SaveOrderRequest struct {
	ID       string `json:"id" example:"1042"`
	Customer string `json:"customer" binding:"required" example:"أحمد علي"`
	Phone    string `json:"phone" example:"01012345678"`
	Address  string `json:"address" example:"القاهرة - مدينة نصر"`
	Content  string `json:"content" example:"تيشيرت مطبوع"`
	Size     string `json:"size" example:"XL"`
	Qty      string `json:"qty" example:"2"`
	Total    string `json:"total" example:"350"`
	Status   string `json:"status" example:"قيد الانتظار"`
	Payment  string `json:"payment" example:"عند الاستلام"`
}

// ToSaveInput 转换为服务层输入
func (r *SaveOrderRequest) ToSaveInput() svorder.SaveInput {
	return svorder.SaveInput{
		ID:       r.ID,
		Customer: r.Customer,
		Phone:    r.Phone,
		Address:  r.Address,
		Content:  r.Content,
		Size:     r.Size,
		Qty:      r.Qty,
		Total:    r.Total,
		Status:   r.Status,
		Payment:  r.Payment,
	}
}
