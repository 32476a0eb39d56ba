package svingest

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/tahagaber/Capify-store/internal/app/domains/entity/etorder"
	"github.com/tahagaber/Capify-store/internal/app/infra/sheet"
)

// 字段别名表（按优先级排列）
// 表格列名存在英文/阿拉伯语两套键名，历史数据还出现过带引号与
// 大小写混杂的变体，键比较前统一做去引号/去空白/转小写处理
var (
	aliasID        = []string{"id"}
	aliasTimestamp = []string{"timestamp", "التاريخ"}
	aliasCustomer  = []string{"customer", "اسم العميل"}
	aliasPhone     = []string{"phone", "رقم الهاتف"}
	aliasAddress   = []string{"address", "العنوان"}
	aliasContent   = []string{"content", "المنتج"}
	aliasSize      = []string{"size", "المقاس"}
	aliasQty       = []string{"qty", "الكمية"}
	aliasTotal     = []string{"total payment", "total", "الإجمالي"}
	aliasStatus    = []string{"status", "الحالة"}
	aliasPayment   = []string{"payment", "وسيلة الدفع"}
)

// cleanKey 规整字段键：去两端空白、去引号、转小写
func cleanKey(k string) string {
	k = strings.TrimSpace(k)
	k = strings.ReplaceAll(k, `"`, "")
	k = strings.ReplaceAll(k, `'`, "")
	return strings.ToLower(strings.TrimSpace(k))
}

// normalizeRow 把原始行规整为 cleanKey -> 字符串值 的查找表
func normalizeRow(row sheet.Row) map[string]string {
	m := make(map[string]string, len(row))
	for k, v := range row {
		ck := cleanKey(k)
		if ck == "" {
			continue
		}
		s := strings.TrimSpace(cast.ToString(v))
		// 空值不占位，让后续别名仍有机会命中
		if s == "" {
			continue
		}
		if _, ok := m[ck]; !ok {
			m[ck] = s
		}
	}
	return m
}

// fieldValue 按别名优先级取第一个非空值，全部缺失时返回缺省值
func fieldValue(m map[string]string, aliases []string, fallback string) string {
	for _, alias := range aliases {
		if v, ok := m[cleanKey(alias)]; ok {
			return v
		}
	}
	return fallback
}

// ResolveRow 把松散键名的原始行解析为规范订单
// 客户姓名解析不到（或全空白）时该行被静默丢弃（过滤而非报错），
// 返回 false
func ResolveRow(row sheet.Row) (*etorder.Order, bool) {
	m := normalizeRow(row)

	customer := fieldValue(m, aliasCustomer, "")
	if strings.TrimSpace(customer) == "" {
		return nil, false
	}

	id := fieldValue(m, aliasID, etorder.SentinelID)

	return &etorder.Order{
		ID:        etorder.CleanID(id),
		Timestamp: fieldValue(m, aliasTimestamp, ""),
		Customer:  customer,
		Phone:     fieldValue(m, aliasPhone, ""),
		Address:   fieldValue(m, aliasAddress, ""),
		Content:   fieldValue(m, aliasContent, ""),
		Size:      fieldValue(m, aliasSize, ""),
		Qty:       fieldValue(m, aliasQty, "1"),
		Total:     fieldValue(m, aliasTotal, "0"),
		Status:    fieldValue(m, aliasStatus, etorder.DefaultStatus),
		Payment:   fieldValue(m, aliasPayment, etorder.DefaultPayment),
	}, true
}

// ResolveRows 批量解析，丢弃无客户姓名的行
func ResolveRows(rows []sheet.Row) []*etorder.Order {
	orders := make([]*etorder.Order, 0, len(rows))
	for _, row := range rows {
		if o, ok := ResolveRow(row); ok {
			orders = append(orders, o)
		}
	}
	return orders
}
