package service

import (
	"context"
	"fmt"
	"sort"

	"gearhive_admin/internal/model"
	"gearhive_admin/pkg/appwrite"
)

// OrderService 订单：店面创建，控制台负责查看/改状态/删除
type OrderService struct {
	docs DocumentClient
	dbID string
	col  string
}

// NewOrderService 创建订单服务
func NewOrderService(docs DocumentClient, dbID, collectionID string) *OrderService {
	return &OrderService{docs: docs, dbID: dbID, col: collectionID}
}

// Orders 全量订单，最新在前
// 排序是服务边界的硬契约：查询层请求 orderDesc($createdAt)，返回后再兜底排序，
// 调用方取"最近 N 条"只需截取前缀
func (s *OrderService) Orders(ctx context.Context) ([]model.Order, error) {
	queries := []appwrite.Query{appwrite.QueryOrderDesc("$createdAt")}

	var orders []model.Order
	if _, err := s.docs.ListDocuments(ctx, s.dbID, s.col, queries, &orders); err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// Order 按 ID 读取；不存在返回 (nil, nil)，视图层显示提示而非报错
func (s *OrderService) Order(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := s.docs.GetDocument(ctx, s.dbID, s.col, id, &order)
	if err != nil {
		if appwrite.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus 只更新 status 一个字段
// 不校验取值：店面等其他调用方也写这个集合，未识别状态由徽章回落兜底
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	var order model.Order
	err := s.docs.UpdateDocument(ctx, s.dbID, s.col, id, map[string]any{"status": status}, &order)
	if err != nil {
		return nil, fmt.Errorf("update order %q status: %w", id, err)
	}
	return &order, nil
}

// Delete 硬删除，不可恢复
func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.docs.DeleteDocument(ctx, s.dbID, s.col, id); err != nil {
		return fmt.Errorf("delete order %q: %w", id, err)
	}
	return nil
}

// TotalRevenue 对给定订单快照求 total_amount 之和
// 全量扫描在客户端侧求和，数据量小的前提下可接受
func TotalRevenue(orders []model.Order) float64 {
	var sum float64
	for _, o := range orders {
		sum += o.TotalAmount
	}
	return sum
}
