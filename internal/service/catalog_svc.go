package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"gearhive_admin/internal/model"
	"gearhive_admin/pkg/appwrite"
	"gearhive_admin/pkg/utils"
)

// ==================== 输入结构 ====================

// UploadImage 待上传的商品图
type UploadImage struct {
	Filename string
	Content  io.Reader
}

// CreateProductInput 创建商品入参，slug 由 name 派生不在此处
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	Category    string
	Status      bool
	Image       *UploadImage
}

// UpdateProductInput 编辑商品入参，Image 为 nil 表示保留原图引用
type UpdateProductInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	Category    string
	Status      bool
	Image       *UploadImage
}

// ProductFilter 列表过滤条件
type ProductFilter struct {
	Category string
	// nil = 不过滤；指向 true/false 过滤上架/草稿
	Status *bool
}

// ==================== 目录服务 ====================

// CatalogService 商品目录：文档 CRUD + 图片上传编排
// 图片上传和文档写入是两步非原子操作，部分失败会留下孤儿文件，这是已知缺口
type CatalogService struct {
	docs   DocumentClient
	files  FileClient
	dbID   string
	col    string
	bucket string
}

// NewCatalogService 创建目录服务
func NewCatalogService(docs DocumentClient, files FileClient, dbID, collectionID, bucketID string) *CatalogService {
	return &CatalogService{
		docs:   docs,
		files:  files,
		dbID:   dbID,
		col:    collectionID,
		bucket: bucketID,
	}
}

// productData 写入 BaaS 的文档字段
func productData(name, slug, description string, price float64, quantity int, category string, status bool, featuredImage string) map[string]any {
	return map[string]any{
		"name":          name,
		"slug":          slug,
		"description":   description,
		"price":         price,
		"quantity":      quantity,
		"category":      category,
		"status":        status,
		"featuredImage": featuredImage,
	}
}

// CreateProduct 先上传图片再建文档，slug 作为文档主键
// 图片缺失返回 ErrImageRequired；上传失败包装为 *StorageError
// slug 撞车时 BaaS 返回 409，原样向上传播
func (s *CatalogService) CreateProduct(ctx context.Context, in CreateProductInput) (*model.Product, error) {
	if in.Image == nil {
		return nil, ErrImageRequired
	}

	slug := utils.Slugify(in.Name)

	file, err := s.files.CreateFile(ctx, s.bucket, uuid.NewString(), in.Image.Filename, in.Image.Content)
	if err != nil {
		return nil, &StorageError{Op: "upload", Err: err}
	}

	var product model.Product
	err = s.docs.CreateDocument(ctx, s.dbID, s.col, slug,
		productData(in.Name, slug, in.Description, in.Price, in.Quantity, in.Category, in.Status, file.ID),
		&product)
	if err != nil {
		return nil, fmt.Errorf("create product %q: %w", slug, err)
	}
	return &product, nil
}

// UpdateProduct 编辑商品，slug 创建后不可变
// 未携带新图时必须取回并保留现有 featuredImage，绝不能用空值覆盖
// 换图时旧文件原样留存 (接受孤儿，删除商品时才清理引用的文件)
func (s *CatalogService) UpdateProduct(ctx context.Context, slug string, in UpdateProductInput) (*model.Product, error) {
	current, err := s.GetProduct(ctx, slug)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("product %q not found", slug)
	}

	fileID := current.FeaturedImage
	if in.Image != nil {
		file, err := s.files.CreateFile(ctx, s.bucket, uuid.NewString(), in.Image.Filename, in.Image.Content)
		if err != nil {
			return nil, &StorageError{Op: "upload", Err: err}
		}
		fileID = file.ID
	}

	var product model.Product
	err = s.docs.UpdateDocument(ctx, s.dbID, s.col, slug, map[string]any{
		"name":          in.Name,
		"description":   in.Description,
		"price":         in.Price,
		"quantity":      in.Quantity,
		"category":      in.Category,
		"status":        in.Status,
		"featuredImage": fileID,
	}, &product)
	if err != nil {
		return nil, fmt.Errorf("update product %q: %w", slug, err)
	}
	return &product, nil
}

// DeleteProduct 删除商品：先删引用的图片文件，再删文档
// 两步之间失败会留下不一致状态，已知缺口，不做补偿
func (s *CatalogService) DeleteProduct(ctx context.Context, slug string) error {
	product, err := s.GetProduct(ctx, slug)
	if err != nil {
		return err
	}
	if product == nil {
		return nil
	}

	if product.FeaturedImage != "" {
		if err := s.files.DeleteFile(ctx, s.bucket, product.FeaturedImage); err != nil {
			return &StorageError{Op: "delete", Err: err}
		}
	}

	if err := s.docs.DeleteDocument(ctx, s.dbID, s.col, slug); err != nil {
		return fmt.Errorf("delete product %q: %w", slug, err)
	}
	return nil
}

// GetProduct 按 slug 读取；不存在返回 (nil, nil)，视图层据此重定向
func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := s.docs.GetDocument(ctx, s.dbID, s.col, slug, &product)
	if err != nil {
		if appwrite.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetProducts 商品列表，可选按分类/上架状态过滤
func (s *CatalogService) GetProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	var queries []appwrite.Query
	if filter.Category != "" {
		queries = append(queries, appwrite.QueryEqual("category", filter.Category))
	}
	if filter.Status != nil {
		queries = append(queries, appwrite.QueryEqual("status", *filter.Status))
	}

	var products []model.Product
	if _, err := s.docs.ListDocuments(ctx, s.dbID, s.col, queries, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FileViewURL 原图地址，纯派生
func (s *CatalogService) FileViewURL(fileID string) string {
	return s.files.FileViewURL(s.bucket, fileID)
}

// FilePreviewURL 预览图地址，纯派生
func (s *CatalogService) FilePreviewURL(fileID string) string {
	return s.files.FilePreviewURL(s.bucket, fileID)
}
