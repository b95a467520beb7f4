package utils

import (
	"strings"
	"unicode"
)

// Slugify 从名称派生 URL slug：小写、非字母数字折叠为连字符
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // 抑制开头的连字符
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
