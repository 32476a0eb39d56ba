package svreport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahagaber/Capify-store/internal/app/domains/entity/etorder"
	"github.com/tahagaber/Capify-store/internal/app/domains/repo/rporder"
	"github.com/tahagaber/Capify-store/internal/app/pkg/logger"
)

var testNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local)

func TestCompute_StatsAndSummary(t *testing.T) {
	orders := []*etorder.Order{
		{ID: "1", Customer: "Ali", Total: "100", Status: etorder.StatusCompleted, Timestamp: "2024-05-14"},
		{ID: "2", Customer: "Mona", Total: "30", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
		{ID: "3", Customer: "Omar", Total: "50", Status: etorder.StatusCancelled, Timestamp: "2024-05-15"},
	}

	snap := Compute(orders, testNow)

	// 已取消订单不计入营收
	assert.InDelta(t, 130.0, snap.Stats.TotalSales, 1e-9)
	assert.Equal(t, 1, snap.Stats.ActiveOrders)
	assert.Equal(t, 1, snap.Stats.CompletedOrders)

	assert.Equal(t, 1, snap.Distribution.Completed)
	assert.Equal(t, 1, snap.Distribution.Cancelled)
	assert.Equal(t, 1, snap.Distribution.InProgress)

	assert.InDelta(t, 130.0, snap.Summary.NetRevenue, 1e-9)
	assert.InDelta(t, 50.0, snap.Summary.ReturnLoss, 1e-9)
	assert.InDelta(t, 65.0, snap.Summary.AvgOrder, 1e-9)
	assert.InDelta(t, 130.0*0.45, snap.Summary.OpsCosts, 1e-9)
}

func TestCompute_DailySales(t *testing.T) {
	orders := []*etorder.Order{
		{ID: "1", Customer: "a", Total: "100", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
		{ID: "2", Customer: "b", Total: "40", Status: etorder.StatusPending, Timestamp: "2024-05-13"},
		{ID: "3", Customer: "c", Total: "99", Status: etorder.StatusPending, Timestamp: "2024-05-01"}, // 窗口外
	}

	snap := Compute(orders, testNow)

	require.Len(t, snap.DailySales, 7)
	// 最后一个桶是今天
	assert.Equal(t, "WED", snap.DailySales[6].Label)
	assert.InDelta(t, 100.0, snap.DailySales[6].Total, 1e-9)
	// 5/13 是往前第 2 天
	assert.InDelta(t, 40.0, snap.DailySales[4].Total, 1e-9)
	// 窗口外的订单不落入任何桶
	var sum float64
	for _, p := range snap.DailySales {
		sum += p.Total
	}
	assert.InDelta(t, 140.0, sum, 1e-9)
}

func TestCompute_Growth(t *testing.T) {
	orders := []*etorder.Order{
		{ID: "1", Customer: "a", Total: "200", Status: etorder.StatusPending, Timestamp: "2024-05-02"},
		{ID: "2", Customer: "b", Total: "60", Status: etorder.StatusPending, Timestamp: "2024-03-20"},
		// 月份匹配不区分年份
		{ID: "3", Customer: "c", Total: "40", Status: etorder.StatusPending, Timestamp: "2023-03-01"},
	}

	snap := Compute(orders, testNow)

	require.Len(t, snap.Growth, 6)
	// 窗口为 Dec..May，最后一个月是当月
	assert.Equal(t, "May", snap.Growth[5].Label)
	assert.InDelta(t, 200.0, snap.Growth[5].Revenue, 1e-9)
	assert.InDelta(t, 90.0, snap.Growth[5].Cost, 1e-9)

	assert.Equal(t, "Mar", snap.Growth[3].Label)
	assert.InDelta(t, 100.0, snap.Growth[3].Revenue, 1e-9)
}

func TestCompute_GrowthMonthEndWindow(t *testing.T) {
	// 月末日期回推月份不得跨月：窗口必须仍是连续 6 个自然月
	monthEnd := time.Date(2024, 5, 31, 12, 0, 0, 0, time.Local)
	orders := []*etorder.Order{
		{ID: "1", Customer: "a", Total: "80", Status: etorder.StatusPending, Timestamp: "2024-02-10"},
		{ID: "2", Customer: "b", Total: "20", Status: etorder.StatusPending, Timestamp: "2024-04-05"},
	}

	snap := Compute(orders, monthEnd)

	require.Len(t, snap.Growth, 6)
	labels := make([]string, 0, growthMonths)
	for _, p := range snap.Growth {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, []string{"Dec", "Jan", "Feb", "Mar", "Apr", "May"}, labels)
	assert.InDelta(t, 80.0, snap.Growth[2].Revenue, 1e-9)
	assert.InDelta(t, 20.0, snap.Growth[4].Revenue, 1e-9)
}

func TestCompute_Expenses(t *testing.T) {
	orders := []*etorder.Order{
		{ID: "1", Customer: "a", Total: "1000", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
	}

	snap := Compute(orders, testNow)

	assert.InDelta(t, 350.0, snap.Expenses.Materials, 1e-9)
	assert.InDelta(t, 150.0, snap.Expenses.Utilities, 1e-9)
	assert.InDelta(t, 100.0, snap.Expenses.Maintenance, 1e-9)
	assert.InDelta(t, 100.0, snap.Expenses.Marketing, 1e-9)
	// 支出总额是四项之和（70%），与 45% 运营成本口径无关
	assert.InDelta(t, 700.0, snap.Expenses.TotalCost, 1e-9)
}

func TestCompute_TopProducts(t *testing.T) {
	orders := []*etorder.Order{
		{ID: "1", Customer: "a", Content: "تيشيرت", Total: "300", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
		{ID: "2", Customer: "b", Content: "هودي", Total: "200", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
		{ID: "3", Customer: "c", Content: "تيشيرت", Total: "100", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
		{ID: "4", Customer: "d", Content: "كوب", Total: "50", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
		{ID: "5", Customer: "e", Content: "", Total: "10", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
	}

	snap := Compute(orders, testNow)

	require.Len(t, snap.TopProducts, 3)
	assert.Equal(t, "تيشيرت", snap.TopProducts[0].Name)
	assert.InDelta(t, 400.0, snap.TopProducts[0].Revenue, 1e-9)
	assert.Equal(t, 2, snap.TopProducts[0].Orders)
	assert.Equal(t, "هودي", snap.TopProducts[1].Name)
	assert.Equal(t, "كوب", snap.TopProducts[2].Name)
}

func TestCompute_TopProductsTieKeepsFirstSeen(t *testing.T) {
	orders := []*etorder.Order{
		{ID: "1", Customer: "a", Content: "p1", Total: "100", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
		{ID: "2", Customer: "b", Content: "p2", Total: "100", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
	}

	snap := Compute(orders, testNow)

	require.Len(t, snap.TopProducts, 2)
	assert.Equal(t, "p1", snap.TopProducts[0].Name)
	assert.Equal(t, "p2", snap.TopProducts[1].Name)
}

func TestCompute_Regions(t *testing.T) {
	orders := []*etorder.Order{
		{ID: "1", Customer: "a", Address: "مدينة نصر القاهرة", Total: "1", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
		{ID: "2", Customer: "b", Address: "القاهرة الجديدة", Total: "1", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
		{ID: "3", Customer: "c", Address: "حدائق الاهرام الجيزة", Total: "1", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
		{ID: "4", Customer: "d", Address: "طنطا", Total: "1", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
	}

	snap := Compute(orders, testNow)

	require.NotEmpty(t, snap.Regions)
	assert.Equal(t, "القاهرة", snap.Regions[0].Name)
	assert.Equal(t, 2, snap.Regions[0].Orders)
	assert.Equal(t, 50, snap.Regions[0].Percent)

	// 无关键词命中的地址归入其他地区
	var other *RegionStat
	for i := range snap.Regions {
		if snap.Regions[i].Name == otherRegions {
			other = &snap.Regions[i]
		}
	}
	require.NotNil(t, other)
	assert.Equal(t, 1, other.Orders)
	assert.Equal(t, 25, other.Percent)
}

func TestCompute_RegionFirstMatchWins(t *testing.T) {
	// 地址同时包含两个关键词时取关键词表中靠前的那个
	orders := []*etorder.Order{
		{ID: "1", Customer: "a", Address: "بين الجيزة و القاهرة", Total: "1", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
	}

	snap := Compute(orders, testNow)

	require.Len(t, snap.Regions, 1)
	assert.Equal(t, "القاهرة", snap.Regions[0].Name)
}

func TestReportService_EmptyCollectionKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	store := rporder.NewOrderRepository()
	svc := NewReportService(store, logger.NopLogger{})

	// 尚未计算过
	svc.Recompute(ctx)
	assert.Nil(t, svc.Latest(ctx))

	store.Replace(ctx, []*etorder.Order{
		{ID: "1", Customer: "Ali", Total: "100", Status: etorder.StatusPending, Timestamp: "2024-05-15"},
	})
	svc.Recompute(ctx)
	first := svc.Latest(ctx)
	require.NotNil(t, first)

	// 集合清空后重算为 no-op，保留上一份快照
	store.Replace(ctx, nil)
	svc.Recompute(ctx)
	assert.Same(t, first, svc.Latest(ctx))
}
