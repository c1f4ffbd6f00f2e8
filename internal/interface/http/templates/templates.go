// Package templates 管理后台页面模板
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse 解析全部页面，模板名为文件名
func Parse() (*template.Template, error) {
	return template.New("").ParseFS(files, "*.html")
}
