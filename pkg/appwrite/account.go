package appwrite

import (
	"context"
	"time"
)

// ==================== 账户/会话 ====================

// Session 邮箱登录创建的会话
type Session struct {
	ID       string `json:"$id"`
	UserID   string `json:"userId"`
	Secret   string `json:"secret"`
	Expire   string `json:"expire"`
	Provider string `json:"provider"`
}

// User 当前会话对应的用户
type User struct {
	ID           string    `json:"$id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registration"`
}

// CreateEmailSession 邮箱+密码登录 (POST /account/sessions/email)
// 凭据错误返回 user_invalid_credentials；已有会话返回 user_session_already_exists
func (c *Client) CreateEmailSession(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/account/sessions/email")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}

	var session Session
	if err := decodeInto(resp, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetAccount 获取会话对应的用户 (GET /account)
func (c *Client) GetAccount(ctx context.Context, sessionSecret string) (*User, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Appwrite-Session", sessionSecret).
		Get("/account")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}

	var user User
	if err := decodeInto(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteSessions 注销该用户的全部会话 (DELETE /account/sessions)
func (c *Client) DeleteSessions(ctx context.Context, sessionSecret string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Appwrite-Session", sessionSecret).
		Delete("/account/sessions")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return decodeError(resp)
	}
	return nil
}
