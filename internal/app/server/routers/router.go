package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/tahagaber/Capify-store/internal/app/pkg/logger"
	"github.com/tahagaber/Capify-store/internal/app/server/handlers/order"
	"github.com/tahagaber/Capify-store/internal/app/server/handlers/report"
	"github.com/tahagaber/Capify-store/internal/app/server/handlers/sync"
	"github.com/tahagaber/Capify-store/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	orderHandler *order.OrderHandler,
	reportHandler *report.ReportHandler,
	syncHandler *sync.SyncHandler,
	log logger.Logger,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "capify-dashboard",
			"message": "Service is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.List)
			orders.POST("", orderHandler.Save)
			orders.GET("/:id", orderHandler.Get)
			orders.GET("/:id/whatsapp", orderHandler.WhatsApp)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/stats", reportHandler.Stats)
			reports.GET("/summary", reportHandler.Summary)
			reports.GET("/charts", reportHandler.Charts)
			reports.GET("/products", reportHandler.TopProducts)
			reports.GET("/regions", reportHandler.Regions)
		}

		syncGroup := v1.Group("/sync")
		{
			syncGroup.GET("/status", syncHandler.Status)
			syncGroup.POST("", syncHandler.Trigger)
		}
	}

	return r
}
