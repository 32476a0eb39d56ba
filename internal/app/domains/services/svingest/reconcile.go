package svingest

import (
	"sort"

	"github.com/tahagaber/Capify-store/internal/app/domains/entity/etorder"
)

// Reconcile 把解析后的订单序列归并为规范集合（纯函数）
// 1. 按订单号去重：后出现的记录覆盖先出现的（以表格行位置为准，
//    与时间戳无关）
// 2. 按解析后的时间戳降序排序，无法解析的时间戳视为最旧落到队尾
// 相同输入（含最终行序）必然产出相同结果
func Reconcile(orders []*etorder.Order) []*etorder.Order {
	latest := make(map[string]*etorder.Order, len(orders))
	firstSeen := make([]string, 0, len(orders))

	for _, o := range orders {
		id := etorder.CleanID(o.ID)
		o.ID = id
		if _, ok := latest[id]; !ok {
			firstSeen = append(firstSeen, id)
		}
		latest[id] = o
	}

	out := make([]*etorder.Order, 0, len(latest))
	for _, id := range firstSeen {
		out = append(out, latest[id])
	}

	// 稳定排序：时间相同的记录保持首次出现的行序
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time().After(out[j].Time())
	})

	return out
}
