package service

import (
	"context"
	"io"

	"gearhive_admin/pkg/appwrite"
)

// ==================== BaaS 能力接口 ====================
// 服务层只依赖这三个窄接口，*appwrite.Client 同时实现全部
// 测试中以假客户端替换，无需真实 BaaS

// AccountClient 会话鉴权能力
type AccountClient interface {
	CreateEmailSession(ctx context.Context, email, password string) (*appwrite.Session, error)
	GetAccount(ctx context.Context, sessionSecret string) (*appwrite.User, error)
	DeleteSessions(ctx context.Context, sessionSecret string) error
}

// DocumentClient 文档 CRUD 能力
type DocumentClient interface {
	CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, data any, out any) error
	GetDocument(ctx context.Context, databaseID, collectionID, documentID string, out any) error
	ListDocuments(ctx context.Context, databaseID, collectionID string, queries []appwrite.Query, out any) (int64, error)
	UpdateDocument(ctx context.Context, databaseID, collectionID, documentID string, data any, out any) error
	DeleteDocument(ctx context.Context, databaseID, collectionID, documentID string) error
}

// FileClient 文件存储能力
type FileClient interface {
	CreateFile(ctx context.Context, bucketID, fileID, filename string, content io.Reader) (*appwrite.File, error)
	DeleteFile(ctx context.Context, bucketID, fileID string) error
	FileViewURL(bucketID, fileID string) string
	FilePreviewURL(bucketID, fileID string) string
}

var _ AccountClient = (*appwrite.Client)(nil)
var _ DocumentClient = (*appwrite.Client)(nil)
var _ FileClient = (*appwrite.Client)(nil)
