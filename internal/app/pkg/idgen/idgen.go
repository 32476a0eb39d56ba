package idgen

import (
	"math/rand"
	"strconv"
)

const (
	minOrderID  = 1000
	idSpan      = 9000
	maxAttempts = 16
)

// OrderID 生成随机 4 位数字订单号
// exists 用于冲突检查（尽力而为：尝试次数用尽后接受重复，
// 后续整表同步会以表格侧数据为准收敛）
func OrderID(exists func(id string) bool) string {
	id := strconv.Itoa(minOrderID + rand.Intn(idSpan))
	if exists == nil {
		return id
	}

	for i := 0; i < maxAttempts && exists(id); i++ {
		id = strconv.Itoa(minOrderID + rand.Intn(idSpan))
	}
	return id
}
