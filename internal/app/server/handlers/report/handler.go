package report

import (
	"github.com/gin-gonic/gin"

	"github.com/tahagaber/Capify-store/internal/app/domains/services/svreport"
	"github.com/tahagaber/Capify-store/internal/app/pkg/ginx"
)

// ReportHandler 报表 HTTP 处理器
// 所有接口都读取最近一次计算的快照；集合尚无数据、快照尚未
// 生成时返回 404，前端保持既有展示不动
type ReportHandler struct {
	reportService *svreport.ReportService
}

// NewReportHandler 创建报表处理器实例
func NewReportHandler(reportService *svreport.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// latest 取最近快照，尚未生成时统一返回 404
func (h *ReportHandler) latest(c *gin.Context) *svreport.Snapshot {
	snap := h.reportService.Latest(c.Request.Context())
	if snap == nil {
		ginx.NotFound(c, "report not ready")
		return nil
	}
	return snap
}

// Stats 仪表盘头部统计
// GET /api/v1/reports/stats
func (h *ReportHandler) Stats(c *gin.Context) {
	if snap := h.latest(c); snap != nil {
		ginx.Success(c, snap.Stats)
	}
}

// Summary 报表页汇总指标
// GET /api/v1/reports/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	if snap := h.latest(c); snap != nil {
		ginx.Success(c, snap.Summary)
	}
}

// Charts 图表数据源（状态分布/近 7 天销售/近 6 月增长/支出分类）
// GET /api/v1/reports/charts
func (h *ReportHandler) Charts(c *gin.Context) {
	snap := h.latest(c)
	if snap == nil {
		return
	}
	ginx.Success(c, gin.H{
		"distribution": snap.Distribution,
		"daily_sales":  snap.DailySales,
		"growth":       snap.Growth,
		"expenses":     snap.Expenses,
		"generated_at": snap.GeneratedAt,
	})
}

// TopProducts 商品排行（营收前 3）
// GET /api/v1/reports/products
func (h *ReportHandler) TopProducts(c *gin.Context) {
	if snap := h.latest(c); snap != nil {
		ginx.Success(c, snap.TopProducts)
	}
}

// Regions 地区分布（单量前 4）
// GET /api/v1/reports/regions
func (h *ReportHandler) Regions(c *gin.Context) {
	if snap := h.latest(c); snap != nil {
		ginx.Success(c, snap.Regions)
	}
}
