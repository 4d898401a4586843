package appwrite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// ==================== 文档 CRUD ====================

// documentListEnvelope 列表响应 {total, documents}
type documentListEnvelope struct {
	Total     int64           `json:"total"`
	Documents json.RawMessage `json:"documents"`
}

// CreateDocument 创建文档，documentID 由调用方指定 (商品用 slug 作为主键)
func (c *Client) CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, data any, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"documentId": documentID,
			"data":       data,
		}).
		Post(fmt.Sprintf("/databases/%s/collections/%s/documents", databaseID, collectionID))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return decodeError(resp)
	}
	return decodeInto(resp, out)
}

// GetDocument 按 ID 读取文档
func (c *Client) GetDocument(ctx context.Context, databaseID, collectionID, documentID string, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/databases/%s/collections/%s/documents/%s", databaseID, collectionID, documentID))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return decodeError(resp)
	}
	return decodeInto(resp, out)
}

// ListDocuments 列表查询，out 接收 documents 数组 (如 *[]model.Order)
func (c *Client) ListDocuments(ctx context.Context, databaseID, collectionID string, queries []Query, out any) (int64, error) {
	req := c.http.R().SetContext(ctx)
	if len(queries) > 0 {
		req.SetQueryParamsFromValues(url.Values{"queries[]": encodeQueries(queries)})
	}

	resp, err := req.Get(fmt.Sprintf("/databases/%s/collections/%s/documents", databaseID, collectionID))
	if err != nil {
		return 0, err
	}
	if resp.IsError() {
		return 0, decodeError(resp)
	}

	var envelope documentListEnvelope
	if err := decodeInto(resp, &envelope); err != nil {
		return 0, err
	}
	if out != nil && len(envelope.Documents) > 0 {
		if err := json.Unmarshal(envelope.Documents, out); err != nil {
			return 0, fmt.Errorf("decode documents: %w", err)
		}
	}
	return envelope.Total, nil
}

// UpdateDocument 部分更新，data 只需携带要改的字段
func (c *Client) UpdateDocument(ctx context.Context, databaseID, collectionID, documentID string, data any, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"data": data}).
		Patch(fmt.Sprintf("/databases/%s/collections/%s/documents/%s", databaseID, collectionID, documentID))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return decodeError(resp)
	}
	return decodeInto(resp, out)
}

// DeleteDocument 删除文档
func (c *Client) DeleteDocument(ctx context.Context, databaseID, collectionID, documentID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/databases/%s/collections/%s/documents/%s", databaseID, collectionID, documentID))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return decodeError(resp)
	}
	return nil
}
