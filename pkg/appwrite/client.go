package appwrite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client 是 Appwrite 兼容 BaaS 的 REST 客户端
// 文档/文件操作使用服务端 API Key 鉴权；账户操作额外携带会话 secret
type Client struct {
	http     *resty.Client
	endpoint string
	project  string
}

// Config Appwrite 连接配置
type Config struct {
	Endpoint string // e.g. https://cloud.appwrite.io/v1
	Project  string
	APIKey   string
}

// NewClient 创建客户端
func NewClient(cfg Config) *Client {
	http := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Appwrite-Project", cfg.Project).
		SetHeader("X-Appwrite-Key", cfg.APIKey)

	return &Client{
		http:     http,
		endpoint: cfg.Endpoint,
		project:  cfg.Project,
	}
}

// Ping 探测 BaaS 可用性 (GET /health)
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	if resp.IsError() {
		return decodeError(resp)
	}
	return nil
}

// decodeError 将 BaaS 错误响应体转换为 *Error
func decodeError(resp *resty.Response) error {
	var apiErr Error
	if err := json.Unmarshal(resp.Body(), &apiErr); err != nil || apiErr.Code == 0 {
		return &Error{
			Code:    resp.StatusCode(),
			Type:    "general_unknown",
			Message: resp.Status(),
		}
	}
	return &apiErr
}

// decodeInto 解析成功响应体
func decodeInto(resp *resty.Response, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
