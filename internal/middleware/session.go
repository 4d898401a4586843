package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"gearhive_admin/internal/service"
	"gearhive_admin/pkg/appwrite"
)

// ==================== 控制台会话 ====================
// 控制台自己的 cookie 只保存 BaaS 会话 secret，身份校验每次回源 BaaS

const (
	SessionName      = "gearhive_admin"
	sessionKeySecret = "baas_secret"

	// Context Keys
	ContextKeyUser = "admin_user"
)

// SessionStore 创建 cookie 存储
func SessionStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SessionSecret 读取 cookie 中的 BaaS 会话 secret，没有则返回空串
func SessionSecret(store *sessions.CookieStore, c *gin.Context) string {
	session, _ := store.Get(c.Request, SessionName)
	if secret, ok := session.Values[sessionKeySecret].(string); ok {
		return secret
	}
	return ""
}

// SaveSessionSecret 登录成功后写入 secret
func SaveSessionSecret(store *sessions.CookieStore, c *gin.Context, secret string) error {
	session, _ := store.Get(c.Request, SessionName)
	session.Values[sessionKeySecret] = secret
	return session.Save(c.Request, c.Writer)
}

// ClearSession 注销时清空 cookie
func ClearSession(store *sessions.CookieStore, c *gin.Context) {
	session, _ := store.Get(c.Request, SessionName)
	delete(session.Values, sessionKeySecret)
	session.Options.MaxAge = -1
	session.Save(c.Request, c.Writer)
}

// ==================== 管理员守卫 ====================

// RequireAdmin 集中式访问控制：受保护路由组统一挂载，而非每个页面各查一遍
// 无会话或身份不是白名单管理员 → 401 并清掉 cookie
func RequireAdmin(store *sessions.CookieStore, auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := SessionSecret(store, c)
		if secret == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "未登录"})
			c.Abort()
			return
		}

		user, err := auth.CurrentUser(c.Request.Context(), secret)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": "鉴权服务不可用"})
			c.Abort()
			return
		}
		if user == nil {
			ClearSession(store, c)
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "会话已失效"})
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// GetAdminUser 从 Context 取当前管理员
func GetAdminUser(c *gin.Context) *appwrite.User {
	if v, exists := c.Get(ContextKeyUser); exists {
		return v.(*appwrite.User)
	}
	return nil
}
