package service

import "strings"

// Slugify 将标题转换为 URL 安全的 slug：
// 小写化，非字母数字的连续片段折叠为单个连字符，并去掉首尾连字符。
// "Hello World!" => "hello-world"。
func Slugify(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(lowered))

	lastHyphen := false
	for _, r := range lowered {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
