package model

import (
	"strings"
	"time"
)

// ==================== 订单状态 ====================

// 已识别的订单状态；状态字段本质是自由字符串，未识别值按默认样式渲染
const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// 状态徽章颜色分类
const (
	BadgeGreen  = "green"
	BadgeBlue   = "blue"
	BadgeYellow = "yellow"
	BadgeRed    = "red"
	BadgeGray   = "gray"
)

// StatusBadge 订单状态到徽章颜色的映射
// delivered→green shipped→blue processing→yellow cancelled→red 其余→gray
func StatusBadge(status string) string {
	switch strings.ToLower(status) {
	case "delivered":
		return BadgeGreen
	case "shipped":
		return BadgeBlue
	case "processing":
		return BadgeYellow
	case "cancelled":
		return BadgeRed
	default:
		return BadgeGray
	}
}

// DisplayStatus 展示用状态，空值回落为 Processing (仅展示层，不回写)
func DisplayStatus(status string) string {
	if status == "" {
		return OrderStatusProcessing
	}
	return status
}

// ==================== 订单 ====================

// Order 订单文档，由店面创建，控制台只读/改状态/删除
type Order struct {
	ID            string    `json:"$id"`
	CustomerName  string    `json:"customer_name"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	ItemsCount    int       `json:"items_count"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"$createdAt"`
}
