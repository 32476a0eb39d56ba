package order

import (
	"github.com/gin-gonic/gin"

	"github.com/tahagaber/Capify-store/internal/app/domains/apimodel/response"
	"github.com/tahagaber/Capify-store/internal/app/pkg/ginx"
	"github.com/tahagaber/Capify-store/internal/app/pkg/walink"
)

// Get 订单详情接口
// GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		ginx.BadRequest(c, "order id required")
		return
	}

	o, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		ginx.NotFound(c, "order not found")
		return
	}

	ginx.Success(c, response.FromOrderEntity(o, h.countryCode))
}

// WhatsApp 订单客户的 WhatsApp 深链接口
// GET /api/v1/orders/:id/whatsapp
func (h *OrderHandler) WhatsApp(c *gin.Context) {
	o, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		ginx.NotFound(c, "order not found")
		return
	}

	url := walink.URL(o.Phone, h.countryCode)
	if url == "" {
		ginx.BadRequest(c, "order has no phone number")
		return
	}

	ginx.Success(c, gin.H{"url": url})
}
