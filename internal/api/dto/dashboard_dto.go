package dto

// DashboardStatsResp 仪表盘统计
// 营收 = 当次订单快照 total_amount 之和；recent_orders 取最新 5 条
type DashboardStatsResp struct {
	TotalOrders   int         `json:"total_orders"`
	TotalProducts int         `json:"total_products"`
	TotalRevenue  float64     `json:"total_revenue"`
	RecentOrders  []OrderResp `json:"recent_orders"`
}
