package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage 本地文件存储实现
// 所有文件以相对路径 <project-identifier>/<stored-name> 存放在根目录下
type Storage struct {
	absBasePath string
}

// NewStorage 创建本地存储提供者
func NewStorage(basePath string) (*Storage, error) {
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for '%s': %w", basePath, err)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create local storage directory '%s': %w", absPath, err)
	}

	return &Storage{
		absBasePath: absPath + string(os.PathSeparator),
	}, nil
}

// resolve 将相对路径解析为根目录下的绝对路径并校验未越界
func (s *Storage) resolve(relPath string) (string, error) {
	if !IsValidRelPath(relPath) {
		return "", fmt.Errorf("invalid file path: %s", relPath)
	}

	fullPath := filepath.Join(s.absBasePath, relPath)

	// 确保最终路径在 basePath 内
	if !strings.HasPrefix(fullPath, s.absBasePath) {
		return "", fmt.Errorf("invalid file path, potential directory traversal: %s", relPath)
	}
	return fullPath, nil
}

// SaveWithContext 保存文件到本地存储，按需创建父目录
func (s *Storage) SaveWithContext(ctx context.Context, relPath string, file io.Reader) error {
	dstPath, err := s.resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory for '%s': %w", dstPath, err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create destination file '%s': %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return fmt.Errorf("failed to copy file content to '%s': %w", dstPath, err)
	}

	return nil
}

// GetWithContext 从本地存储获取文件
func (s *Storage) GetWithContext(ctx context.Context, relPath string) (io.ReadSeekCloser, error) {
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", relPath)
		}
		return nil, fmt.Errorf("failed to open file '%s': %w", relPath, err)
	}

	return file, nil
}

// DeleteWithContext 从本地存储删除文件
// 文件不存在时返回 os.ErrNotExist，调用方决定是否容忍
func (s *Storage) DeleteWithContext(ctx context.Context, relPath string) error {
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return fmt.Errorf("failed to delete local file '%s': %w", fullPath, err)
	}

	return nil
}

// RemoveDir 删除根目录下的一个子目录及其全部文件（项目级联删除）
func (s *Storage) RemoveDir(ctx context.Context, relDir string) error {
	fullPath, err := s.resolve(relDir)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(fullPath); err != nil {
		return fmt.Errorf("failed to remove directory '%s': %w", fullPath, err)
	}
	return nil
}

// Exists 检查文件是否存在
func (s *Storage) Exists(ctx context.Context, relPath string) (bool, error) {
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Health 检查存储健康状态
func (s *Storage) Health(ctx context.Context) error {
	_, err := os.ReadDir(s.absBasePath)
	return err
}

// BasePath 返回存储的基础路径
func (s *Storage) BasePath() string {
	return s.absBasePath
}

// IsValidRelPath 校验相对路径是否合法
// 拒绝空路径、绝对路径以及包含 ".." 的路径
func IsValidRelPath(relPath string) bool {
	if relPath == "" || strings.TrimSpace(relPath) == "" {
		return false
	}
	if filepath.IsAbs(relPath) {
		return false
	}
	cleaned := filepath.Clean(relPath)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(os.PathSeparator)) {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(cleaned), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
