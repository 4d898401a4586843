package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"gearhive_admin/internal/api/dto"
	"gearhive_admin/internal/middleware"
	"gearhive_admin/internal/service"
	"gearhive_admin/pkg/appwrite"
)

// AuthController 登录/注销/当前身份
type AuthController struct {
	svc   *service.AuthService
	store *sessions.CookieStore
}

// NewAuthController 创建鉴权控制器
func NewAuthController(svc *service.AuthService, store *sessions.CookieStore) *AuthController {
	return &AuthController{svc: svc, store: store}
}

func toUserResp(u *appwrite.User) dto.UserResp {
	return dto.UserResp{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Login 管理员登录
// POST /api/auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}

	session, err := ctl.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAdmin):
			c.JSON(http.StatusForbidden, gin.H{"code": 403, "message": "Unauthorized access. This email is not an admin."})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "Invalid email or password"})
		case errors.Is(err, service.ErrSessionActive):
			// 已有会话不算失败，前端按已登录处理直接跳转
			c.JSON(http.StatusOK, gin.H{"code": 0, "message": "already logged in"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": "登录失败: " + err.Error()})
		}
		return
	}

	if err := middleware.SaveSessionSecret(ctl.store, c, session.Secret); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "保存会话失败"})
		return
	}

	user, _ := ctl.svc.CurrentUser(c.Request.Context(), session.Secret)
	resp := gin.H{"code": 0, "message": "success"}
	if user != nil {
		resp["data"] = toUserResp(user)
	}
	c.JSON(http.StatusOK, resp)
}

// Logout 注销，永远成功
// POST /api/auth/logout
func (ctl *AuthController) Logout(c *gin.Context) {
	secret := middleware.SessionSecret(ctl.store, c)
	ctl.svc.Logout(c.Request.Context(), secret)
	middleware.ClearSession(ctl.store, c)
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// Me 当前会话身份；未登录返回 data=null 而非错误
// GET /api/auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	secret := middleware.SessionSecret(ctl.store, c)
	user, err := ctl.svc.CurrentUser(c.Request.Context(), secret)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": "鉴权服务不可用"})
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "data": toUserResp(user)})
}
