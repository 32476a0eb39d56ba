package walink

import "strings"

// DefaultCountryCode 默认国际区号（埃及）
const DefaultCountryCode = "20"

// Normalize 将电话号码规整为国际格式的纯数字串
// 规则：去掉所有非数字字符；若无国际区号前缀，
// 去掉本地长途前缀 0 后补上区号
func Normalize(phone, countryCode string) string {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	p := b.String()
	if p == "" {
		return ""
	}

	if !strings.HasPrefix(p, countryCode) {
		p = countryCode + strings.TrimPrefix(p, "0")
	}
	return p
}

// URL 生成 WhatsApp 深链，号码为空时返回空串
func URL(phone, countryCode string) string {
	p := Normalize(phone, countryCode)
	if p == "" {
		return ""
	}
	return "https://wa.me/" + p
}
