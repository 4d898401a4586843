package appwrite

import (
	"context"
	"fmt"
	"io"
)

// ==================== 文件存储 ====================

// File 存储桶中的文件
type File struct {
	ID       string `json:"$id"`
	BucketID string `json:"bucketId"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"sizeOriginal"`
}

// CreateFile 上传文件 (multipart)，fileID 由调用方生成保证唯一
func (c *Client) CreateFile(ctx context.Context, bucketID, fileID, filename string, content io.Reader) (*File, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{"fileId": fileID}).
		SetMultipartField("file", filename, "application/octet-stream", content).
		Post(fmt.Sprintf("/storage/buckets/%s/files", bucketID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}

	var file File
	if err := decodeInto(resp, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// DeleteFile 删除文件
func (c *Client) DeleteFile(ctx context.Context, bucketID, fileID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/storage/buckets/%s/files/%s", bucketID, fileID))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return decodeError(resp)
	}
	return nil
}

// FileViewURL 原图访问地址，纯 URL 拼接不发网络请求
func (c *Client) FileViewURL(bucketID, fileID string) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s",
		c.endpoint, bucketID, fileID, c.project)
}

// FilePreviewURL 预览图访问地址，纯 URL 拼接不发网络请求
func (c *Client) FilePreviewURL(bucketID, fileID string) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/preview?project=%s",
		c.endpoint, bucketID, fileID, c.project)
}
