package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"gearhive_admin/internal/controller"
	"gearhive_admin/internal/middleware"
	"gearhive_admin/internal/router"
	"gearhive_admin/internal/service"
	"gearhive_admin/pkg/appwrite"
)

// ==================== 测试辅助 ====================

const (
	testAdminEmail = "gearhiveofficial@gmail.com"
	testAdminPass  = "hunter2"
)

// stubBaaS 内存 BaaS，覆盖三个能力接口
type stubBaaS struct {
	docs     map[string]map[string]json.RawMessage // collection -> id -> doc
	docOrder map[string][]string
	files    map[string]bool
	sessions map[string]string // secret -> email
}

func newStubBaaS() *stubBaaS {
	return &stubBaaS{
		docs:     map[string]map[string]json.RawMessage{},
		docOrder: map[string][]string{},
		files:    map[string]bool{},
		sessions: map[string]string{},
	}
}

func (s *stubBaaS) seed(col, id string, doc map[string]any) {
	doc["$id"] = id
	raw, _ := json.Marshal(doc)
	if _, ok := s.docs[col]; !ok {
		s.docs[col] = map[string]json.RawMessage{}
	}
	if _, exists := s.docs[col][id]; !exists {
		s.docOrder[col] = append(s.docOrder[col], id)
	}
	s.docs[col][id] = raw
}

func (s *stubBaaS) CreateEmailSession(_ context.Context, email, password string) (*appwrite.Session, error) {
	if email != testAdminEmail || password != testAdminPass {
		return nil, &appwrite.Error{Code: 401, Type: appwrite.TypeUserInvalidCredentials, Message: "Invalid credentials"}
	}
	s.sessions["sec-1"] = email
	return &appwrite.Session{ID: "sess1", Secret: "sec-1"}, nil
}

func (s *stubBaaS) GetAccount(_ context.Context, secret string) (*appwrite.User, error) {
	email, ok := s.sessions[secret]
	if !ok {
		return nil, &appwrite.Error{Code: 401, Type: appwrite.TypeUserUnauthorized, Message: "missing scope"}
	}
	return &appwrite.User{ID: "u1", Name: "Admin", Email: email}, nil
}

func (s *stubBaaS) DeleteSessions(_ context.Context, secret string) error {
	delete(s.sessions, secret)
	return nil
}

func (s *stubBaaS) CreateDocument(_ context.Context, _, col, id string, data any, out any) error {
	if _, exists := s.docs[col][id]; exists {
		return &appwrite.Error{Code: 409, Type: appwrite.TypeDocumentAlreadyExists, Message: "exists"}
	}
	raw, _ := json.Marshal(data)
	var doc map[string]any
	json.Unmarshal(raw, &doc)
	s.seed(col, id, doc)
	return json.Unmarshal(s.docs[col][id], out)
}

func (s *stubBaaS) GetDocument(_ context.Context, _, col, id string, out any) error {
	raw, ok := s.docs[col][id]
	if !ok {
		return &appwrite.Error{Code: 404, Type: appwrite.TypeDocumentNotFound, Message: "not found"}
	}
	return json.Unmarshal(raw, out)
}

func (s *stubBaaS) ListDocuments(_ context.Context, _, col string, _ []appwrite.Query, out any) (int64, error) {
	var list []json.RawMessage
	for _, id := range s.docOrder[col] {
		list = append(list, s.docs[col][id])
	}
	raw, _ := json.Marshal(list)
	if out != nil && len(list) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return 0, err
		}
	}
	return int64(len(list)), nil
}

func (s *stubBaaS) UpdateDocument(_ context.Context, _, col, id string, data any, out any) error {
	raw, ok := s.docs[col][id]
	if !ok {
		return &appwrite.Error{Code: 404, Type: appwrite.TypeDocumentNotFound, Message: "not found"}
	}
	var doc map[string]any
	json.Unmarshal(raw, &doc)
	patch, _ := json.Marshal(data)
	var patchMap map[string]any
	json.Unmarshal(patch, &patchMap)
	for k, v := range patchMap {
		doc[k] = v
	}
	s.seed(col, id, doc)
	return json.Unmarshal(s.docs[col][id], out)
}

func (s *stubBaaS) DeleteDocument(_ context.Context, _, col, id string) error {
	if _, ok := s.docs[col][id]; !ok {
		return &appwrite.Error{Code: 404, Type: appwrite.TypeDocumentNotFound, Message: "not found"}
	}
	delete(s.docs[col], id)
	return nil
}

func (s *stubBaaS) CreateFile(_ context.Context, _, fileID, _ string, content io.Reader) (*appwrite.File, error) {
	io.Copy(io.Discard, content)
	s.files[fileID] = true
	return &appwrite.File{ID: fileID}, nil
}

func (s *stubBaaS) DeleteFile(_ context.Context, _, fileID string) error {
	delete(s.files, fileID)
	return nil
}

func (s *stubBaaS) FileViewURL(bucket, fileID string) string {
	return "https://baas.test/v1/storage/buckets/" + bucket + "/files/" + fileID + "/view?project=test"
}

func (s *stubBaaS) FilePreviewURL(bucket, fileID string) string {
	return "https://baas.test/v1/storage/buckets/" + bucket + "/files/" + fileID + "/preview?project=test"
}

// ---------- 路由搭建 ----------

type testApp struct {
	baas   *stubBaaS
	engine *gin.Engine
}

func newTestApp() *testApp {
	gin.SetMode(gin.TestMode)
	baas := newStubBaaS()

	store := middleware.SessionStore("test-session-secret")
	authSvc := service.NewAuthService(baas, testAdminEmail)
	catalogSvc := service.NewCatalogService(baas, baas, "db1", "products", "product-images")
	orderSvc := service.NewOrderService(baas, "db1", "orders")

	ctls := &router.Controllers{
		Auth:      controller.NewAuthController(authSvc, store),
		Product:   controller.NewProductController(catalogSvc),
		Order:     controller.NewOrderController(orderSvc),
		Dashboard: controller.NewDashboardController(orderSvc, catalogSvc),
	}
	return &testApp{baas: baas, engine: router.SetupRouter(ctls, store, authSvc)}
}

// login 登录并返回会话 cookie
func (a *testApp) login() []*http.Cookie {
	body, _ := json.Marshal(map[string]string{"email": testAdminEmail, "password": testAdminPass})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w.Result().Cookies()
}

// do 携带 cookie 发请求
func (a *testApp) do(method, path string, body io.Reader, contentType string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// multipartProductForm 组装商品表单
func multipartProductForm(fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	if withImage {
		fw, _ := mw.CreateFormFile("image", "photo.jpg")
		fw.Write([]byte("jpeg-bytes"))
	}
	mw.Close()
	return buf, mw.FormDataContentType()
}
