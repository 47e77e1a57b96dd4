package utils

// TruncatePreview 按 rune 截断会话预览内容，不追加省略号
func TruncatePreview(content string, maxLength int) string {
	runes := []rune(content)
	if len(runes) <= maxLength {
		return content
	}
	return string(runes[:maxLength])
}
