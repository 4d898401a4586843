package service

import (
	"context"
	"log"

	"gearhive_admin/pkg/appwrite"
)

// AuthService 单管理员鉴权闸门
// 白名单检查发生在任何 BaaS 调用之前；凭据校验完全委托给 BaaS
type AuthService struct {
	account    AccountClient
	adminEmail string
}

// NewAuthService 创建鉴权服务
func NewAuthService(account AccountClient, adminEmail string) *AuthService {
	return &AuthService{account: account, adminEmail: adminEmail}
}

// Login 邮箱+密码登录
// 非白名单邮箱返回 ErrNotAdmin (不触发任何网络调用)
// BaaS 凭据错误映射为 ErrInvalidCredentials；已有会话映射为 ErrSessionActive
func (s *AuthService) Login(ctx context.Context, email, password string) (*appwrite.Session, error) {
	if email != s.adminEmail {
		return nil, ErrNotAdmin
	}

	session, err := s.account.CreateEmailSession(ctx, email, password)
	if err != nil {
		if appwrite.IsErrorType(err, appwrite.TypeUserInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		if appwrite.IsErrorType(err, appwrite.TypeUserSessionAlreadyExist) {
			return nil, ErrSessionActive
		}
		return nil, err
	}
	return session, nil
}

// CurrentUser 查询会话身份
// 无会话返回 (nil, nil)；会话存在但邮箱不是管理员时，立即注销并返回 (nil, nil)，
// 保证任何非管理员会话都无法存活
func (s *AuthService) CurrentUser(ctx context.Context, sessionSecret string) (*appwrite.User, error) {
	if sessionSecret == "" {
		return nil, nil
	}

	user, err := s.account.GetAccount(ctx, sessionSecret)
	if err != nil {
		if appwrite.IsUnauthorized(err) {
			return nil, nil
		}
		log.Printf("[Auth] getCurrentUser 失败: %v", err)
		return nil, nil
	}

	if user.Email != s.adminEmail {
		s.Logout(ctx, sessionSecret)
		return nil, nil
	}
	return user, nil
}

// Logout 注销全部会话，尽力而为：失败只记日志，调用方永远视为成功
func (s *AuthService) Logout(ctx context.Context, sessionSecret string) {
	if sessionSecret == "" {
		return
	}
	if err := s.account.DeleteSessions(ctx, sessionSecret); err != nil {
		log.Printf("[Auth] logout 失败: %v", err)
	}
}
