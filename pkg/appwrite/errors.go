package appwrite

import (
	"errors"
	"fmt"
	"net/http"
)

// ==================== 错误类型常量 ====================

// Appwrite 错误类型 (响应体中的 type 字段)
const (
	TypeUserInvalidCredentials  = "user_invalid_credentials"
	TypeUserSessionAlreadyExist = "user_session_already_exists"
	TypeUserUnauthorized        = "general_unauthorized_scope"
	TypeDocumentNotFound        = "document_not_found"
	TypeDocumentAlreadyExists   = "document_already_exists"
	TypeStorageFileNotFound     = "storage_file_not_found"
)

// Error BaaS 错误响应体
type Error struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("appwrite: %s (%d %s)", e.Message, e.Code, e.Type)
}

// ==================== 判定辅助 ====================

// IsErrorType 判断错误是否为指定的 Appwrite 错误类型
func IsErrorType(err error, t string) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Type == t
	}
	return false
}

// IsNotFound 文档/文件不存在
func IsNotFound(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound
	}
	return false
}

// IsConflict 文档 ID 冲突 (slug 撞车时触发)
func IsConflict(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusConflict
	}
	return false
}

// IsUnauthorized 会话无效或已过期
func IsUnauthorized(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusUnauthorized
	}
	return false
}
