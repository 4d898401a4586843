package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"gearhive_admin/internal/config"
	"gearhive_admin/internal/controller"
	"gearhive_admin/internal/middleware"
	"gearhive_admin/internal/router"
	"gearhive_admin/internal/service"
	"gearhive_admin/internal/task"
	"gearhive_admin/pkg/appwrite"
)

func main() {
	// 1. 加载配置
	cfg := config.LoadConfig()

	// 2. 初始化依赖
	deps := initDependencies(cfg)

	// 3. 启动定时任务
	initTasks(deps)

	// 4. 初始化路由
	r := router.SetupRouter(deps.Controllers, deps.SessionStore, deps.Services.Auth)

	// 5. 启动服务
	startServer(r, cfg.Port)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	Config       *config.Config
	Client       *appwrite.Client
	SessionStore *sessions.CookieStore
	Services     *Services
	Controllers  *router.Controllers
}

// Services 服务集合
type Services struct {
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Order   *service.OrderService
}

// ==================== 初始化函数 ====================

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config) *Dependencies {
	// -------- BaaS 客户端 --------
	client := appwrite.NewClient(appwrite.Config{
		Endpoint: cfg.AppwriteEndpoint,
		Project:  cfg.AppwriteProject,
		APIKey:   cfg.AppwriteAPIKey,
	})

	// -------- 会话存储 --------
	store := middleware.SessionStore(cfg.SessionSecret)

	// -------- 业务服务 --------
	services := &Services{
		Auth:    service.NewAuthService(client, cfg.AdminEmail),
		Catalog: service.NewCatalogService(client, client, cfg.DatabaseID, cfg.CollectionProducts, cfg.BucketImages),
		Order:   service.NewOrderService(client, cfg.DatabaseID, cfg.CollectionOrders),
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:      controller.NewAuthController(services.Auth, store),
		Product:   controller.NewProductController(services.Catalog),
		Order:     controller.NewOrderController(services.Order),
		Dashboard: controller.NewDashboardController(services.Order, services.Catalog),
	}

	return &Dependencies{
		Config:       cfg,
		Client:       client,
		SessionStore: store,
		Services:     services,
		Controllers:  controllers,
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	healthTask := task.NewHealthTask(deps.Client)
	healthTask.Start()

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine, port string) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("GearHive Admin 启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}
