package service

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/inkwell/internal/db"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// RenderContent 将文章正文渲染为可安全对外输出的 HTML。
// markdown 格式先经 goldmark 转换，所有输出统一经过 bluemonday 清洗。
func RenderContent(format, content string) (string, error) {
	if format == db.PostFormatMarkdown {
		var buf bytes.Buffer
		if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
			return "", err
		}
		return sanitizer.Sanitize(buf.String()), nil
	}

	return sanitizer.Sanitize(content), nil
}
