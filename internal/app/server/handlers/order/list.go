package order

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tahagaber/Capify-store/internal/app/domains/apimodel/response"
	"github.com/tahagaber/Capify-store/internal/app/pkg/ginx"
)

// List 订单列表接口
// GET /api/v1/orders?q=&status=&limit=
// q 对客户姓名/电话/订单号做不区分大小写的子串匹配；
// status 精确匹配，缺省或 "all" 不过滤
func (h *OrderHandler) List(c *gin.Context) {
	query := c.Query("q")
	status := c.DefaultQuery("status", "all")

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	orders := h.orderService.ListOrders(c.Request.Context(), query, status, limit)
	ginx.Success(c, response.FromOrderEntities(orders, h.countryCode))
}
