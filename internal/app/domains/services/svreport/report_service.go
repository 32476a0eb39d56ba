package svreport

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tahagaber/Capify-store/internal/app/domains/entity/etorder"
	"github.com/tahagaber/Capify-store/internal/app/domains/repo/rporder"
	"github.com/tahagaber/Capify-store/internal/app/pkg/logger"
	"github.com/tahagaber/Capify-store/internal/app/pkg/timex"
)

// 成本估算比例
// 注意：报表页顶部的运营成本估算（45%）与支出分类占比
// （35+15+10+10=70%）是两套独立口径，按产品定义分别计算，不求对账
const (
	opsCostRate = 0.45

	materialsRate   = 0.35
	utilitiesRate   = 0.15
	maintenanceRate = 0.10
	marketingRate   = 0.10
)

const (
	dailyDays      = 7
	growthMonths   = 6
	topProductMax  = 3
	topRegionMax   = 4
	unknownProduct = "Unknown Product"
	otherRegions   = "أقاليم أخرى"
)

// 地区关键词表（按固定顺序扫描地址，取第一个命中）
var regionKeywords = []string{
	"القاهرة",
	"الجيزة",
	"الاسكندرية",
	"التجمع",
	"الشيخ زايد",
	"المهندسين",
	"المعادي",
}

// HeadlineStats 仪表盘头部统计
type HeadlineStats struct {
	TotalSales      float64 `json:"total_sales"`      // 有效订单总营收
	ActiveOrders    int     `json:"active_orders"`    // 进行中订单数（非完成非取消）
	CompletedOrders int     `json:"completed_orders"` // 已完成订单数
}

// StatusDistribution 状态分布（柱状图数据源）
type StatusDistribution struct {
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
	InProgress int `json:"in_progress"` // 非完成非取消的全部状态
}

// DailyPoint 单日销售额（折线图数据点）
type DailyPoint struct {
	Label string  `json:"label"` // 星期缩写（SUN..SAT）
	Total float64 `json:"total"`
}

// MonthlyPoint 单月营收与成本估算（增长图数据点）
type MonthlyPoint struct {
	Label   string  `json:"label"` // 月份缩写（Jan..Dec）
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"` // 营收的 45%
}

// ExpenseSplit 支出分类估算（环形图数据源）
type ExpenseSplit struct {
	Materials   float64 `json:"materials"`
	Utilities   float64 `json:"utilities"`
	Maintenance float64 `json:"maintenance"`
	Marketing   float64 `json:"marketing"`
	TotalCost   float64 `json:"total_cost"` // 以上四项之和
}

// ProductStat 商品维度统计
type ProductStat struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// RegionStat 地区维度统计
type RegionStat struct {
	Name    string `json:"name"`
	Orders  int    `json:"orders"`
	Percent int    `json:"percent"` // 占有效订单数的百分比（四舍五入）
}

// Summary 报表页汇总指标
type Summary struct {
	NetRevenue float64 `json:"net_revenue"` // 有效订单净营收
	ReturnLoss float64 `json:"return_loss"` // 已取消订单的金额损失
	AvgOrder   float64 `json:"avg_order"`   // 有效订单均值
	OpsCosts   float64 `json:"ops_costs"`   // 运营成本估算（净营收 45%）
}

// Snapshot 一次聚合计算的完整产出
type Snapshot struct {
	Stats        HeadlineStats      `json:"stats"`
	Distribution StatusDistribution `json:"distribution"`
	DailySales   []DailyPoint       `json:"daily_sales"`
	Growth       []MonthlyPoint     `json:"growth"`
	Expenses     ExpenseSplit       `json:"expenses"`
	TopProducts  []ProductStat      `json:"top_products"`
	Regions      []RegionStat       `json:"regions"`
	Summary      Summary            `json:"summary"`
	GeneratedAt  time.Time          `json:"generated_at"`
}

// ReportService 聚合引擎
// 对规范集合做只读计算，集合每次变化后重算；
// 集合为空时跳过重算，保留上一份快照（不渲染零值）
type ReportService struct {
	store  rporder.OrderRepository
	logger logger.Logger

	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewReportService 创建聚合引擎实例
func NewReportService(store rporder.OrderRepository, log logger.Logger) *ReportService {
	return &ReportService{
		store:  store,
		logger: log,
	}
}

// Recompute 重算全部聚合指标
// 空集合为 no-op：不覆盖已有快照
func (s *ReportService) Recompute(ctx context.Context) {
	orders := s.store.Snapshot(ctx)
	if len(orders) == 0 {
		s.logger.Debugf(ctx, "[Report] skip recompute: empty collection")
		return
	}

	snap := Compute(orders, time.Now())

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	s.logger.Debugf(ctx, "[Report] snapshot recomputed: orders=%d", len(orders))
}

// Latest 返回最近一次计算的快照，尚未计算过时返回 nil
func (s *ReportService) Latest(ctx context.Context) *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Compute 对给定集合做一次完整聚合（纯函数，便于测试）
func Compute(orders []*etorder.Order, now time.Time) *Snapshot {
	valid := make([]*etorder.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsValid() {
			valid = append(valid, o)
		}
	}

	return &Snapshot{
		Stats:        computeStats(orders, valid),
		Distribution: computeDistribution(orders),
		DailySales:   computeDailySales(valid, now),
		Growth:       computeGrowth(valid, now),
		Expenses:     computeExpenses(valid),
		TopProducts:  computeTopProducts(valid),
		Regions:      computeRegions(valid),
		Summary:      computeSummary(orders, valid),
		GeneratedAt:  now,
	}
}

// computeStats 头部统计
func computeStats(orders, valid []*etorder.Order) HeadlineStats {
	st := HeadlineStats{}
	for _, o := range valid {
		st.TotalSales += o.TotalValue()
	}
	for _, o := range orders {
		if o.IsActive() {
			st.ActiveOrders++
		}
		if o.IsCompleted() {
			st.CompletedOrders++
		}
	}
	return st
}

// computeDistribution 状态分布（全量订单口径）
func computeDistribution(orders []*etorder.Order) StatusDistribution {
	d := StatusDistribution{}
	for _, o := range orders {
		switch {
		case o.IsCompleted():
			d.Completed++
		case o.IsCancelled():
			d.Cancelled++
		default:
			d.InProgress++
		}
	}
	return d
}

// computeDailySales 近 7 天（含今天）单日销售额
// 单日区间为 [本地零点, 次日零点)
func computeDailySales(valid []*etorder.Order, now time.Time) []DailyPoint {
	points := make([]DailyPoint, 0, dailyDays)

	for i := dailyDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start := timex.DayStart(day)
		end := start.AddDate(0, 0, 1)

		var total float64
		for _, o := range valid {
			t := o.Time()
			if !t.Before(start) && t.Before(end) {
				total += o.TotalValue()
			}
		}

		points = append(points, DailyPoint{
			Label: strings.ToUpper(day.Weekday().String()[:3]),
			Total: total,
		})
	}

	return points
}

// computeGrowth 近 6 个月营收与成本估算
// 按日历月份匹配（不区分年份，与前端口径一致），非滚动 30 天窗口
func computeGrowth(valid []*etorder.Order, now time.Time) []MonthlyPoint {
	points := make([]MonthlyPoint, 0, growthMonths)

	// 月末日期直接回推会被 AddDate 归一化跨月（如 5/31 回推 3 个月
	// 落到 3/2），先锚定到当月一号再回推
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := growthMonths - 1; i >= 0; i-- {
		month := anchor.AddDate(0, -i, 0).Month()

		var revenue float64
		for _, o := range valid {
			t := o.Time()
			if !t.IsZero() && t.Month() == month {
				revenue += o.TotalValue()
			}
		}

		points = append(points, MonthlyPoint{
			Label:   month.String()[:3],
			Revenue: revenue,
			Cost:    revenue * opsCostRate,
		})
	}

	return points
}

// computeExpenses 支出分类估算（总额 = 各分类之和，独立于 45% 口径）
func computeExpenses(valid []*etorder.Order) ExpenseSplit {
	var revenue float64
	for _, o := range valid {
		revenue += o.TotalValue()
	}

	e := ExpenseSplit{
		Materials:   revenue * materialsRate,
		Utilities:   revenue * utilitiesRate,
		Maintenance: revenue * maintenanceRate,
		Marketing:   revenue * marketingRate,
	}
	e.TotalCost = e.Materials + e.Utilities + e.Maintenance + e.Marketing
	return e
}

// computeTopProducts 按商品归组统计营收与单量，取营收前 3
func computeTopProducts(valid []*etorder.Order) []ProductStat {
	grouped := make(map[string]*ProductStat)
	names := make([]string, 0)

	for _, o := range valid {
		name := o.Content
		if name == "" {
			name = unknownProduct
		}
		ps, ok := grouped[name]
		if !ok {
			ps = &ProductStat{Name: name}
			grouped[name] = ps
			names = append(names, name)
		}
		ps.Revenue += o.TotalValue()
		ps.Orders++
	}

	out := make([]ProductStat, 0, len(names))
	for _, name := range names {
		out = append(out, *grouped[name])
	}
	// 稳定排序：营收相同的保持首次出现顺序
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue > out[j].Revenue
	})

	if len(out) > topProductMax {
		out = out[:topProductMax]
	}
	return out
}

// computeRegions 地区分布
// 对每个有效订单的地址做不区分大小写的子串扫描，
// 取关键词表中第一个命中的地区，无命中归入“其他地区”；
// 按单量取前 4，份额为占有效订单数的百分比
func computeRegions(valid []*etorder.Order) []RegionStat {
	counts := make(map[string]int)
	names := make([]string, 0)

	for _, o := range valid {
		region := otherRegions
		addr := strings.ToLower(o.Address)
		for _, kw := range regionKeywords {
			if strings.Contains(addr, strings.ToLower(kw)) {
				region = kw
				break
			}
		}
		if _, ok := counts[region]; !ok {
			names = append(names, region)
		}
		counts[region]++
	}

	total := len(valid)
	if total == 0 {
		total = 1
	}

	out := make([]RegionStat, 0, len(names))
	for _, name := range names {
		out = append(out, RegionStat{
			Name:    name,
			Orders:  counts[name],
			Percent: int(math.Round(float64(counts[name]) / float64(total) * 100)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Orders > out[j].Orders
	})

	if len(out) > topRegionMax {
		out = out[:topRegionMax]
	}
	return out
}

// computeSummary 报表页汇总指标
func computeSummary(orders, valid []*etorder.Order) Summary {
	sm := Summary{}
	for _, o := range valid {
		sm.NetRevenue += o.TotalValue()
	}
	for _, o := range orders {
		if o.IsCancelled() {
			sm.ReturnLoss += o.TotalValue()
		}
	}
	if len(valid) > 0 {
		sm.AvgOrder = sm.NetRevenue / float64(len(valid))
	}
	sm.OpsCosts = sm.NetRevenue * opsCostRate
	return sm
}
