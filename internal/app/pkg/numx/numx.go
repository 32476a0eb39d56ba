package numx

import (
	"strconv"
	"strings"
)

// ParseFloat 解析数字字符串，失败时返回 0
// 容忍前导/尾随空白与尾部非数字字符（取最长合法数字前缀），
// 保证所有聚合计算使用同一套缺省语义
func ParseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}

	// 取最长合法前缀（如 "150 EGP" -> 150）
	end := 0
	seenDigit := false
	seenDot := false
scan:
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
			end = i + 1
		case r == '.' && !seenDot:
			seenDot = true
			end = i + 1
		case (r == '+' || r == '-') && i == 0:
			end = i + 1
		default:
			break scan
		}
	}

	if !seenDigit {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimRight(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseQty 解析数量字符串，失败或非正数时返回 1
func ParseQty(s string) int {
	v := int(ParseFloat(s))
	if v <= 0 {
		return 1
	}
	return v
}
