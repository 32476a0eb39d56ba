package sync

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tahagaber/Capify-store/internal/app/pkg/errorx"
	"github.com/tahagaber/Capify-store/internal/app/pkg/ginx"
	"github.com/tahagaber/Capify-store/internal/app/worker"
)

// SyncHandler 同步 HTTP 处理器
type SyncHandler struct {
	syncWorker *worker.SyncWorker
}

// NewSyncHandler 创建同步处理器实例
func NewSyncHandler(syncWorker *worker.SyncWorker) *SyncHandler {
	return &SyncHandler{
		syncWorker: syncWorker,
	}
}

// Status 同步状态接口
// GET /api/v1/sync/status
// initial_load=true 时前端展示加载占位（集合为空且从未同步成功）
func (h *SyncHandler) Status(c *gin.Context) {
	ginx.Success(c, h.syncWorker.Status(c.Request.Context()))
}

// Trigger 手动触发同步
// POST /api/v1/sync
// 受陈旧阈值约束：刚同步过则返回当前状态而不重新拉取
func (h *SyncHandler) Trigger(c *gin.Context) {
	err := h.syncWorker.TrySync(c.Request.Context(), false)
	if err != nil && !errors.Is(err, errorx.ErrStaleSync) {
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, h.syncWorker.Status(c.Request.Context()))
}
