package timex

import (
	"strings"
	"time"
)

// StampLayout 表格时间戳格式（en-US locale，与前端 toLocaleString 一致）
const StampLayout = "1/2/2006, 3:04:05 PM"

// 表格中出现过的时间戳格式，按命中频率排序
var layouts = []string{
	StampLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 3:04:05 PM",
	"1/2/2006",
	"2006/01/02",
}

// Parse 解析时间戳字符串
// 无法解析时返回零值时间（降序排序时落到队尾，视为最旧记录）
func Parse(ts string) time.Time {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return time.Time{}
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, ts, time.Local); err == nil {
			return t
		}
	}

	return time.Time{}
}

// NowStamp 生成当前本地时间的表格格式时间戳
func NowStamp() string {
	return time.Now().Format(StampLayout)
}

// DayStart 返回某时刻所在自然日的零点（本地时区）
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
