package controller

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"gearhive_admin/internal/api/dto"
	"gearhive_admin/internal/model"
	"gearhive_admin/internal/service"
)

// OrderController 订单控制器
type OrderController struct {
	svc *service.OrderService
}

// NewOrderController 创建订单控制器
func NewOrderController(svc *service.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

func toOrderResp(o *model.Order) dto.OrderResp {
	status := model.DisplayStatus(o.Status)
	return dto.OrderResp{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		TotalAmount:   o.TotalAmount,
		Status:        status,
		Badge:         model.StatusBadge(status),
		PaymentStatus: o.PaymentStatus,
		ItemsCount:    o.ItemsCount,
		Address:       o.Address,
		CreatedAt:     o.CreatedAt,
	}
}

// List 订单列表，搜索/状态过滤/排序
// GET /api/orders?q=&status=&sort=
func (ctl *OrderController) List(c *gin.Context) {
	var query dto.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}

	orders, err := ctl.svc.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": "查询失败: " + err.Error()})
		return
	}

	keyword := strings.ToLower(query.Keyword)
	list := make([]dto.OrderResp, 0, len(orders))
	for i := range orders {
		resp := toOrderResp(&orders[i])
		if keyword != "" &&
			!strings.Contains(strings.ToLower(resp.CustomerName), keyword) &&
			!strings.Contains(strings.ToLower(resp.ID), keyword) {
			continue
		}
		if query.Status != "" && query.Status != "all" && resp.Status != query.Status {
			continue
		}
		list = append(list, resp)
	}

	// 服务层已保证最新在前，newest 无需再排
	switch query.Sort {
	case "oldest":
		sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	case "items-high":
		sort.SliceStable(list, func(i, j int) bool { return list[i].ItemsCount > list[j].ItemsCount })
	case "items-low":
		sort.SliceStable(list, func(i, j int) bool { return list[i].ItemsCount < list[j].ItemsCount })
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "data": dto.OrderListResp{Total: len(list), List: list}})
}

// Get 订单详情
// GET /api/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	order, err := ctl.svc.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": "查询失败: " + err.Error()})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "data": toOrderResp(order)})
}

// UpdateStatus 只改 status 一个字段
// PATCH /api/orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}

	order, err := ctl.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": "更新失败: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "data": toOrderResp(order)})
}

// Delete 硬删除订单
// DELETE /api/orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	if err := ctl.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": "删除失败: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}
