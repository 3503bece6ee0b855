// Package apperrors 定义仓库层与服务层共享的错误分类
// HTTP 层通过 errors.Is 将其映射为状态码
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation 输入缺失或格式错误
	ErrValidation = errors.New("validation error")

	// ErrNotFound 实体不存在或不属于调用者（对外不做区分）
	ErrNotFound = errors.New("not found")

	// ErrConflict 唯一性冲突（用户名、邮箱、项目内标签名）
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized 令牌缺失、过期或无效
	ErrUnauthorized = errors.New("unauthorized")

	// ErrIO 文件系统操作失败
	ErrIO = errors.New("io error")
)

// Validationf 构造带格式化消息的校验错误
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// NotFoundf 构造带格式化消息的未找到错误
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

// Conflictf 构造带格式化消息的冲突错误
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrConflict}, args...)...)
}

// IOf 构造带格式化消息的 IO 错误
func IOf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrIO}, args...)...)
}
