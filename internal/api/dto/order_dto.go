package dto

import "time"

// ListOrdersQuery 订单列表查询参数，搜索/过滤/排序对应前端的列表控件
type ListOrdersQuery struct {
	// 匹配客户名或订单 ID，大小写不敏感
	Keyword string `form:"q"`
	// "all" 或具体状态
	Status string `form:"status"`
	// newest | oldest | items-high | items-low
	Sort string `form:"sort" binding:"omitempty,oneof=newest oldest items-high items-low"`
}

// UpdateOrderStatusRequest 改状态入参；取值不限于四个已识别状态
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderResp 订单响应，badge 为状态徽章颜色分类
type OrderResp struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	Badge         string    `json:"badge"`
	PaymentStatus string    `json:"payment_status"`
	ItemsCount    int       `json:"items_count"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
}

// OrderListResp 订单列表响应
type OrderListResp struct {
	Total int         `json:"total"`
	List  []OrderResp `json:"list"`
}
