package service

import (
	"errors"
	"fmt"
)

// ==================== 业务错误 ====================

var (
	// ErrNotAdmin 邮箱不在管理员白名单内，未联系 BaaS 即拒绝
	ErrNotAdmin = errors.New("unauthorized access: this email is not an admin")

	// ErrInvalidCredentials BaaS 校验凭据失败
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionActive 该客户端已持有会话，调用方应视为已登录而非失败
	ErrSessionActive = errors.New("a session is already active")

	// ErrImageRequired 创建商品必须先上传图片
	ErrImageRequired = errors.New("product image is required")
)

// StorageError 文件上传/删除失败
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
