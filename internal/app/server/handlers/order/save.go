package order

import (
	"github.com/gin-gonic/gin"

	"github.com/tahagaber/Capify-store/internal/app/domains/apimodel/request"
	"github.com/tahagaber/Capify-store/internal/app/domains/apimodel/response"
	"github.com/tahagaber/Capify-store/internal/app/pkg/ginx"
)

// Save 保存订单接口（创建或更新）
// POST /api/v1/orders
// 本地乐观应用后立即返回，远端推送在后台进行且不等待结果
func (h *OrderHandler) Save(c *gin.Context) {
	var req request.SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	o, err := h.orderService.SaveOrder(c.Request.Context(), req.ToSaveInput())
	if err != nil {
		ginx.BadRequest(c, err.Error())
		return
	}

	ginx.Success(c, response.FromOrderEntity(o, h.countryCode))
}
