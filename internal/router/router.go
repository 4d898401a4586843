package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"gearhive_admin/internal/controller"
	"gearhive_admin/internal/middleware"
	"gearhive_admin/internal/service"
)

// Controllers 控制器集合
type Controllers struct {
	Auth      *controller.AuthController
	Product   *controller.ProductController
	Order     *controller.OrderController
	Dashboard *controller.DashboardController
}

// SetupRouter 注册所有路由
// 访问控制集中在受保护路由组上，不靠各页面自查会话
func SetupRouter(ctls *Controllers, store *sessions.CookieStore, auth *service.AuthService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// 存活探针
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// auth 鉴权组 (唯一的未守卫入口)
		authGroup := api.Group("/auth")
		{
			// POST /api/auth/login
			authGroup.POST("/login", ctls.Auth.Login)
			// POST /api/auth/logout
			authGroup.POST("/logout", ctls.Auth.Logout)
			// GET /api/auth/me
			authGroup.GET("/me", ctls.Auth.Me)
		}

		protected := api.Group("")
		protected.Use(middleware.RequireAdmin(store, auth))
		{
			// products 商品目录
			products := protected.Group("/products")
			{
				products.GET("", ctls.Product.List)
				products.GET("/:slug", ctls.Product.Get)
				products.POST("", ctls.Product.Create)
				products.PUT("/:slug", ctls.Product.Update)
				products.DELETE("/:slug", ctls.Product.Delete)
			}

			// orders 订单
			orders := protected.Group("/orders")
			{
				orders.GET("", ctls.Order.List)
				orders.GET("/:id", ctls.Order.Get)
				orders.PATCH("/:id/status", ctls.Order.UpdateStatus)
				orders.DELETE("/:id", ctls.Order.Delete)
			}

			// dashboard 仪表盘
			protected.GET("/dashboard/stats", ctls.Dashboard.Stats)
		}
	}

	return r
}
