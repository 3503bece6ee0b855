package validator

import (
	"path/filepath"
	"strings"
)

// 允许上传的图片扩展名
var allowedImageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".bmp":  {},
	".webp": {},
}

// IsAllowedImageExtension 检查文件名的扩展名是否在允许列表内
func IsAllowedImageExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := allowedImageExtensions[ext]
	return ok
}

// AllowedImageExtensions 返回允许的扩展名列表（用于错误提示）
func AllowedImageExtensions() []string {
	exts := make([]string, 0, len(allowedImageExtensions))
	for ext := range allowedImageExtensions {
		exts = append(exts, ext)
	}
	return exts
}
