package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// NewIdentifier 生成实体的对外标识符
func NewIdentifier() string {
	return uuid.New().String()
}

// GenerateStoredFilename 为上传文件生成随机存储名，保留原始扩展名
// 原始文件名不参与存储名，避免冲突与路径注入
func GenerateStoredFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s%s", uuid.New().String(), ext)
}
