package worker

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/tahagaber/Capify-store/internal/app/domains/repo/rporder"
	"github.com/tahagaber/Capify-store/internal/app/domains/services/svingest"
	"github.com/tahagaber/Capify-store/internal/app/pkg/errorx"
	"github.com/tahagaber/Capify-store/internal/app/pkg/logger"
)

// Status 同步状态（供前端判断是否展示加载占位）
type Status struct {
	LastSync    time.Time `json:"last_sync"`    // 最近一次成功同步时间（零值表示从未成功）
	Syncing     bool      `json:"syncing"`      // 是否有同步正在进行
	Orders      int       `json:"orders"`       // 当前集合大小
	InitialLoad bool      `json:"initial_load"` // 首次加载中（集合为空且尚未同步成功）
}

// SyncWorker 同步调度器
// 启动即做一次后台拉取，之后按固定间隔重复；
// 距上次成功同步不足陈旧阈值时跳过本轮（简单防抖，非背压）
type SyncWorker struct {
	ingest    *svingest.IngestService
	store     rporder.OrderRepository
	interval  time.Duration
	staleness time.Duration
	logger    logger.Logger

	lastSync *atomic.Int64 // 最近一次成功同步（UnixMilli，0 表示从未成功）
	syncing  *atomic.Bool
}

// NewSyncWorker 创建同步调度器实例
func NewSyncWorker(
	ingest *svingest.IngestService,
	store rporder.OrderRepository,
	interval, staleness time.Duration,
	log logger.Logger,
) *SyncWorker {
	return &SyncWorker{
		ingest:    ingest,
		store:     store,
		interval:  interval,
		staleness: staleness,
		logger:    log,
		lastSync:  atomic.NewInt64(0),
		syncing:   atomic.NewBool(false),
	}
}

// Start 启动调度循环（阻塞，ctx 取消后返回）
func (w *SyncWorker) Start(ctx context.Context) {
	w.logger.Infof(ctx, "[Sync] worker started: interval=%v, staleness=%v", w.interval, w.staleness)

	// 1. 冷启动：先用缓存填充集合
	w.ingest.Bootstrap(ctx)

	// 2. 立即做一次后台同步（不受陈旧阈值限制）
	if err := w.TrySync(ctx, true); err != nil {
		w.logger.Errorf(ctx, "[Sync] initial sync failed: %v", err)
	}

	// 3. 固定间隔重复
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Infof(ctx, "[Sync] worker stopped")
			return
		case <-ticker.C:
			if err := w.TrySync(ctx, false); err != nil {
				w.logger.Errorf(ctx, "[Sync] scheduled sync failed: %v", err)
			}
		}
	}
}

// TrySync 执行一次同步
// force=false 时受陈旧阈值约束，刚同步过则返回 errorx.ErrStaleSync；
// 同步失败只记日志上抛，集合与缓存保持最后一次成功的结果
func (w *SyncWorker) TrySync(ctx context.Context, force bool) error {
	if !force && w.sinceLastSync() < w.staleness {
		return errorx.ErrStaleSync
	}

	ctx = context.WithValue(ctx, "trace_id", uuid.New().String())

	w.syncing.Store(true)
	defer w.syncing.Store(false)

	if err := w.ingest.Sync(ctx); err != nil {
		return err
	}

	w.lastSync.Store(time.Now().UnixMilli())
	return nil
}

// Status 返回当前同步状态
func (w *SyncWorker) Status(ctx context.Context) Status {
	last := w.lastSync.Load()
	st := Status{
		Syncing: w.syncing.Load(),
		Orders:  w.store.Count(ctx),
	}
	if last > 0 {
		st.LastSync = time.UnixMilli(last)
	}
	st.InitialLoad = st.Orders == 0 && last == 0
	return st
}

// sinceLastSync 距上次成功同步的时长（从未成功视为无穷久）
func (w *SyncWorker) sinceLastSync() time.Duration {
	last := w.lastSync.Load()
	if last == 0 {
		return time.Duration(math.MaxInt64)
	}
	return time.Since(time.UnixMilli(last))
}
