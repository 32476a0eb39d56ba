package svingest

import (
	"context"
	"fmt"

	"go.uber.org/atomic"

	"github.com/tahagaber/Capify-store/internal/app/domains/entity/etorder"
	"github.com/tahagaber/Capify-store/internal/app/domains/repo/rporder"
	"github.com/tahagaber/Capify-store/internal/app/domains/services/svreport"
	"github.com/tahagaber/Capify-store/internal/app/infra/sheet"
	"github.com/tahagaber/Capify-store/internal/app/pkg/logger"
)

// RowFetcher 原始行拉取接口（mdsheet 适配）
type RowFetcher interface {
	FetchRows(ctx context.Context) ([]sheet.Row, error)
}

// OrderCache 规范集合缓存接口（mdcache 适配）
type OrderCache interface {
	LoadOrders(ctx context.Context) ([]*etorder.Order, error)
	SaveOrders(ctx context.Context, orders []*etorder.Order) error
}

// IngestService 同步流水线：拉取 → 解析 → 归并 → 提交
// 集合替换是整体赋值，读方看不到半更新状态；
// 单调批次号保证并发拉取时只有最后发起的一次能提交结果
type IngestService struct {
	fetcher RowFetcher
	cache   OrderCache
	store   rporder.OrderRepository
	reports *svreport.ReportService
	logger  logger.Logger

	seq *atomic.Int64 // 单调递增的拉取批次号
}

// NewIngestService 创建同步流水线实例
func NewIngestService(
	fetcher RowFetcher,
	cache OrderCache,
	store rporder.OrderRepository,
	reports *svreport.ReportService,
	log logger.Logger,
) *IngestService {
	return &IngestService{
		fetcher: fetcher,
		cache:   cache,
		store:   store,
		reports: reports,
		logger:  log,
		seq:     atomic.NewInt64(0),
	}
}

// Bootstrap 冷启动：用缓存立即填充集合，网络同步之前即可渲染
// 缓存缺失或损坏只记日志，集合保持原（空）状态
func (s *IngestService) Bootstrap(ctx context.Context) {
	orders, err := s.cache.LoadOrders(ctx)
	if err != nil {
		s.logger.Warnf(ctx, "[Ingest] cache load skipped: %v", err)
		return
	}

	s.store.Replace(ctx, orders)
	s.reports.Recompute(ctx)
	s.logger.Infof(ctx, "[Ingest] collection restored from cache: orders=%d", len(orders))
}

// Sync 执行一次完整同步
// 任一环节失败都不改动集合与缓存（保留最后一次成功的结果）
func (s *IngestService) Sync(ctx context.Context) error {
	// 1. 领取批次号（并发拉取时只认最新批次）
	mySeq := s.seq.Inc()
	ctx = context.WithValue(ctx, "sync_seq", mySeq)

	// 2. 拉取原始行
	rows, err := s.fetcher.FetchRows(ctx)
	if err != nil {
		return fmt.Errorf("fetch rows: %w", err)
	}

	// 3. 解析 + 归并
	orders := Reconcile(ResolveRows(rows))

	// 4. 批次校验：期间有更新的拉取发起过，丢弃本次结果
	if s.seq.Load() != mySeq {
		s.logger.Warnf(ctx, "[Ingest] discard stale sync result: rows=%d", len(rows))
		return nil
	}

	// 5. 整体替换集合
	s.store.Replace(ctx, orders)

	// 6. 持久化缓存（失败不影响本次同步结果）
	if err := s.cache.SaveOrders(ctx, orders); err != nil {
		s.logger.Errorf(ctx, "[Ingest] cache save failed: %v", err)
	}

	// 7. 重算聚合指标
	s.reports.Recompute(ctx)

	s.logger.Infof(ctx, "[Ingest] sync committed: rows=%d, orders=%d", len(rows), len(orders))
	return nil
}
