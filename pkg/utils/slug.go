package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
)

// Slugify 由商品名派生 URL 安全的主键
// 规则: trim → 小写 → 去除 [a-z0-9 空格 -] 以外字符 → 连续空白折叠为单个 "-"
// 幂等: Slugify(Slugify(s)) == Slugify(s)
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	return s
}
