package svingest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahagaber/Capify-store/internal/app/domains/entity/etorder"
	"github.com/tahagaber/Capify-store/internal/app/domains/repo/rporder"
	"github.com/tahagaber/Capify-store/internal/app/domains/services/svreport"
	"github.com/tahagaber/Capify-store/internal/app/infra/sheet"
	"github.com/tahagaber/Capify-store/internal/app/pkg/logger"
)

// fakeFetcher 可编程的行拉取桩
type fakeFetcher struct {
	mu      sync.Mutex
	rows    []sheet.Row
	err     error
	started chan struct{} // 不为 nil 时进入拉取即发信号
	block   chan struct{} // 不为 nil 时拉取阻塞等待放行
	fetches int
}

func (f *fakeFetcher) FetchRows(ctx context.Context) ([]sheet.Row, error) {
	f.mu.Lock()
	rows, err := f.rows, f.err
	started, block := f.started, f.block
	f.fetches++
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// fakeCache 内存缓存桩
type fakeCache struct {
	mu     sync.Mutex
	orders []*etorder.Order
	loaded bool
	err    error
	saves  int
}

func (f *fakeCache) LoadOrders(ctx context.Context) ([]*etorder.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loaded {
		return nil, errors.New("cache entry not found")
	}
	return f.orders, f.err
}

func (f *fakeCache) SaveOrders(ctx context.Context, orders []*etorder.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.orders = orders
	f.saves++
	return nil
}

func newIngestFixture(fetcher *fakeFetcher, cache *fakeCache) (*IngestService, rporder.OrderRepository) {
	store := rporder.NewOrderRepository()
	reports := svreport.NewReportService(store, logger.NopLogger{})
	svc := NewIngestService(fetcher, cache, store, reports, logger.NopLogger{})
	return svc, store
}

func TestIngestService_SyncCommits(t *testing.T) {
	fetcher := &fakeFetcher{rows: []sheet.Row{
		{"id": "1", "customer": "Ali", "timestamp": "2024-01-01", "total": "100"},
		{"id": "2", "customer": "Mona", "timestamp": "2024-02-01", "total": "50"},
	}}
	cache := &fakeCache{}
	svc, store := newIngestFixture(fetcher, cache)

	require.NoError(t, svc.Sync(context.Background()))

	orders := store.Snapshot(context.Background())
	require.Len(t, orders, 2)
	assert.Equal(t, "2", orders[0].ID) // 最新的在前
	assert.Equal(t, 1, cache.saves)
}

func TestIngestService_FetchErrorKeepsState(t *testing.T) {
	fetcher := &fakeFetcher{rows: []sheet.Row{{"id": "1", "customer": "Ali"}}}
	cache := &fakeCache{}
	svc, store := newIngestFixture(fetcher, cache)

	require.NoError(t, svc.Sync(context.Background()))
	require.Equal(t, 1, store.Count(context.Background()))

	// 第二次同步失败：集合与缓存保持最后一次成功的结果
	fetcher.mu.Lock()
	fetcher.err = errors.New("network down")
	fetcher.mu.Unlock()

	err := svc.Sync(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, fetcher.fetches)
	assert.Equal(t, 1, store.Count(context.Background()))
	assert.Equal(t, 1, cache.saves)
}

func TestIngestService_StaleResultDiscarded(t *testing.T) {
	// 旧拉取尚未返回时发起了新拉取：旧结果必须被丢弃
	started := make(chan struct{}, 1)
	block := make(chan struct{})
	fetcher := &fakeFetcher{
		rows:    []sheet.Row{{"id": "old", "customer": "Old"}},
		started: started,
		block:   block,
	}
	cache := &fakeCache{}
	svc, store := newIngestFixture(fetcher, cache)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = svc.Sync(context.Background()) // 批次 1，阻塞在拉取
	}()
	<-started // 等批次 1 进入拉取

	// 批次 2：换数据、不阻塞，先完成
	fetcher.mu.Lock()
	fetcher.rows = []sheet.Row{{"id": "new", "customer": "New"}}
	fetcher.started = nil
	fetcher.block = nil
	fetcher.mu.Unlock()
	require.NoError(t, svc.Sync(context.Background()))

	// 放行批次 1
	close(block)
	wg.Wait()

	orders := store.Snapshot(context.Background())
	require.Len(t, orders, 1)
	assert.Equal(t, "new", orders[0].ID)
}

func TestIngestService_BootstrapFromCache(t *testing.T) {
	cached := []*etorder.Order{{ID: "9", Customer: "Ali", Timestamp: "2024-01-01"}}
	cache := &fakeCache{orders: cached, loaded: true}
	svc, store := newIngestFixture(&fakeFetcher{}, cache)

	svc.Bootstrap(context.Background())

	assert.Equal(t, 1, store.Count(context.Background()))
}

func TestIngestService_BootstrapMissingCache(t *testing.T) {
	svc, store := newIngestFixture(&fakeFetcher{}, &fakeCache{})

	// 缓存缺失不报错也不改动集合
	svc.Bootstrap(context.Background())

	assert.Equal(t, 0, store.Count(context.Background()))
}
