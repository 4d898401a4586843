package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gearhive_admin/internal/api/dto"
	"gearhive_admin/internal/service"
)

// DashboardController 仪表盘统计
type DashboardController struct {
	orders  *service.OrderService
	catalog *service.CatalogService
}

// NewDashboardController 创建仪表盘控制器
func NewDashboardController(orders *service.OrderService, catalog *service.CatalogService) *DashboardController {
	return &DashboardController{orders: orders, catalog: catalog}
}

// Stats 订单数/商品数/总营收/最近 5 单
// GET /api/dashboard/stats
func (ctl *DashboardController) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	orders, err := ctl.orders.Orders(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": "查询订单失败: " + err.Error()})
		return
	}

	products, err := ctl.catalog.GetProducts(ctx, service.ProductFilter{})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": "查询商品失败: " + err.Error()})
		return
	}

	// 最新在前是服务层契约，最近 5 单直接取前缀
	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}
	recentList := make([]dto.OrderResp, 0, len(recent))
	for i := range recent {
		recentList = append(recentList, toOrderResp(&recent[i]))
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "data": dto.DashboardStatsResp{
		TotalOrders:   len(orders),
		TotalProducts: len(products),
		TotalRevenue:  service.TotalRevenue(orders),
		RecentOrders:  recentList,
	}})
}
