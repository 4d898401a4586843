package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gearhive_admin/pkg/appwrite"
)

// ==================== 假 BaaS 客户端 ====================
// 内存实现三个能力接口，按调用计数验证"白名单先于网络调用"等不变量

type fakeBaaS struct {
	// 账户
	users          map[string]string // email -> password
	sessionUser    map[string]string // secret -> email
	nextSecret     string
	createSessionN int
	deleteSessionN int

	// 文档: collection -> docID -> JSON
	collections map[string]map[string]json.RawMessage
	docOrder    map[string][]string // 插入顺序

	// 文件
	storedFiles  map[string]bool
	uploadErr    error
	deleteFileN  int
	deletedFiles []string
}

func newFakeBaaS() *fakeBaaS {
	return &fakeBaaS{
		users:       map[string]string{},
		sessionUser: map[string]string{},
		nextSecret:  "secret-1",
		collections: map[string]map[string]json.RawMessage{},
		docOrder:    map[string][]string{},
		storedFiles: map[string]bool{},
	}
}

func apiError(code int, typ, msg string) error {
	return &appwrite.Error{Code: code, Type: typ, Message: msg}
}

// ---------- AccountClient ----------

func (f *fakeBaaS) CreateEmailSession(_ context.Context, email, password string) (*appwrite.Session, error) {
	f.createSessionN++
	pass, ok := f.users[email]
	if !ok || pass != password {
		return nil, apiError(http.StatusUnauthorized, appwrite.TypeUserInvalidCredentials, "Invalid credentials")
	}
	secret := f.nextSecret
	f.sessionUser[secret] = email
	return &appwrite.Session{ID: "sess-" + secret, UserID: "u-" + email, Secret: secret}, nil
}

func (f *fakeBaaS) GetAccount(_ context.Context, secret string) (*appwrite.User, error) {
	email, ok := f.sessionUser[secret]
	if !ok {
		return nil, apiError(http.StatusUnauthorized, appwrite.TypeUserUnauthorized, "missing scope")
	}
	return &appwrite.User{ID: "u-" + email, Name: "Admin", Email: email}, nil
}

func (f *fakeBaaS) DeleteSessions(_ context.Context, secret string) error {
	f.deleteSessionN++
	delete(f.sessionUser, secret)
	return nil
}

// ---------- DocumentClient ----------

func (f *fakeBaaS) putDoc(col, id string, doc map[string]any) {
	doc["$id"] = id
	raw, _ := json.Marshal(doc)
	if _, ok := f.collections[col]; !ok {
		f.collections[col] = map[string]json.RawMessage{}
	}
	if _, exists := f.collections[col][id]; !exists {
		f.docOrder[col] = append(f.docOrder[col], id)
	}
	f.collections[col][id] = raw
}

func (f *fakeBaaS) CreateDocument(_ context.Context, _, col, id string, data any, out any) error {
	if _, exists := f.collections[col][id]; exists {
		return apiError(http.StatusConflict, appwrite.TypeDocumentAlreadyExists, "Document already exists")
	}
	doc := toMap(data)
	f.putDoc(col, id, doc)
	return reencode(f.collections[col][id], out)
}

func (f *fakeBaaS) GetDocument(_ context.Context, _, col, id string, out any) error {
	raw, ok := f.collections[col][id]
	if !ok {
		return apiError(http.StatusNotFound, appwrite.TypeDocumentNotFound, "Document not found")
	}
	return reencode(raw, out)
}

func (f *fakeBaaS) ListDocuments(_ context.Context, _, col string, _ []appwrite.Query, out any) (int64, error) {
	var docs []json.RawMessage
	for _, id := range f.docOrder[col] {
		docs = append(docs, f.collections[col][id])
	}
	raw, _ := json.Marshal(docs)
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return 0, err
		}
	}
	return int64(len(docs)), nil
}

func (f *fakeBaaS) UpdateDocument(_ context.Context, _, col, id string, data any, out any) error {
	raw, ok := f.collections[col][id]
	if !ok {
		return apiError(http.StatusNotFound, appwrite.TypeDocumentNotFound, "Document not found")
	}
	var doc map[string]any
	json.Unmarshal(raw, &doc)
	for k, v := range toMap(data) {
		doc[k] = v
	}
	f.putDoc(col, id, doc)
	return reencode(f.collections[col][id], out)
}

func (f *fakeBaaS) DeleteDocument(_ context.Context, _, col, id string) error {
	if _, ok := f.collections[col][id]; !ok {
		return apiError(http.StatusNotFound, appwrite.TypeDocumentNotFound, "Document not found")
	}
	delete(f.collections[col], id)
	order := f.docOrder[col][:0]
	for _, d := range f.docOrder[col] {
		if d != id {
			order = append(order, d)
		}
	}
	f.docOrder[col] = order
	return nil
}

// ---------- FileClient ----------

func (f *fakeBaaS) CreateFile(_ context.Context, bucket, fileID, filename string, content io.Reader) (*appwrite.File, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	io.Copy(io.Discard, content)
	f.storedFiles[fileID] = true
	return &appwrite.File{ID: fileID, BucketID: bucket, Name: filename}, nil
}

func (f *fakeBaaS) DeleteFile(_ context.Context, _, fileID string) error {
	f.deleteFileN++
	if !f.storedFiles[fileID] {
		return apiError(http.StatusNotFound, appwrite.TypeStorageFileNotFound, "File not found")
	}
	delete(f.storedFiles, fileID)
	f.deletedFiles = append(f.deletedFiles, fileID)
	return nil
}

func (f *fakeBaaS) FileViewURL(bucket, fileID string) string {
	return fmt.Sprintf("https://baas.test/v1/storage/buckets/%s/files/%s/view?project=test", bucket, fileID)
}

func (f *fakeBaaS) FilePreviewURL(bucket, fileID string) string {
	return fmt.Sprintf("https://baas.test/v1/storage/buckets/%s/files/%s/preview?project=test", bucket, fileID)
}

// ---------- 辅助 ----------

func toMap(data any) map[string]any {
	raw, _ := json.Marshal(data)
	var m map[string]any
	json.Unmarshal(raw, &m)
	return m
}

func reencode(raw json.RawMessage, out any) error {
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
