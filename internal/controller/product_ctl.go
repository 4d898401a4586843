package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gearhive_admin/internal/api/dto"
	"gearhive_admin/internal/model"
	"gearhive_admin/internal/service"
	"gearhive_admin/pkg/appwrite"
)

// ProductController 商品目录控制器
type ProductController struct {
	svc *service.CatalogService
}

// NewProductController 创建商品控制器
func NewProductController(svc *service.CatalogService) *ProductController {
	return &ProductController{svc: svc}
}

func (ctl *ProductController) toProductResp(p *model.Product) dto.ProductResp {
	resp := dto.ProductResp{
		Slug:          p.Slug,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Quantity:      p.Quantity,
		Category:      p.Category,
		Status:        p.Status,
		FeaturedImage: p.FeaturedImage,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.FeaturedImage != "" {
		resp.ImageURL = ctl.svc.FileViewURL(p.FeaturedImage)
		resp.PreviewURL = ctl.svc.FilePreviewURL(p.FeaturedImage)
	}
	return resp
}

// formImage 从 multipart 表单取可选的商品图
func formImage(c *gin.Context) (*service.UploadImage, error) {
	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &service.UploadImage{Filename: header.Filename, Content: f}, nil
}

// List 商品列表
// GET /api/products?q=&category=&status=
func (ctl *ProductController) List(c *gin.Context) {
	var query dto.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}

	filter := service.ProductFilter{Category: query.Category}
	switch query.Status {
	case "active":
		active := true
		filter.Status = &active
	case "draft":
		draft := false
		filter.Status = &draft
	}

	products, err := ctl.svc.GetProducts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": "查询失败: " + err.Error()})
		return
	}

	keyword := strings.ToLower(query.Keyword)
	list := make([]dto.ProductResp, 0, len(products))
	for i := range products {
		if keyword != "" && !strings.Contains(strings.ToLower(products[i].Name), keyword) {
			continue
		}
		list = append(list, ctl.toProductResp(&products[i]))
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "data": list, "total": len(list)})
}

// Get 商品详情
// GET /api/products/:slug
func (ctl *ProductController) Get(c *gin.Context) {
	slug := c.Param("slug")

	product, err := ctl.svc.GetProduct(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": "查询失败: " + err.Error()})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": "商品不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "data": ctl.toProductResp(product)})
}

// Create 创建商品，slug 由名称派生并作为主键，图片必传
// POST /api/products (multipart)
func (ctl *ProductController) Create(c *gin.Context) {
	var form dto.CreateProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}

	image, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "读取图片失败: " + err.Error()})
		return
	}

	product, err := ctl.svc.CreateProduct(c.Request.Context(), service.CreateProductInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Quantity:    form.Quantity,
		Category:    form.Category,
		Status:      form.Status,
		Image:       image,
	})
	if err != nil {
		ctl.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 0, "data": ctl.toProductResp(product)})
}

// Update 编辑商品，slug 不可变；不传图片则保留原图
// PUT /api/products/:slug (multipart)
func (ctl *ProductController) Update(c *gin.Context) {
	slug := c.Param("slug")

	var form dto.UpdateProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}

	image, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "读取图片失败: " + err.Error()})
		return
	}

	product, err := ctl.svc.UpdateProduct(c.Request.Context(), slug, service.UpdateProductInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Quantity:    form.Quantity,
		Category:    form.Category,
		Status:      form.Status,
		Image:       image,
	})
	if err != nil {
		ctl.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "data": ctl.toProductResp(product)})
}

// Delete 删除商品及其引用的图片文件
// DELETE /api/products/:slug
func (ctl *ProductController) Delete(c *gin.Context) {
	slug := c.Param("slug")

	if err := ctl.svc.DeleteProduct(c.Request.Context(), slug); err != nil {
		ctl.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// writeCatalogError 目录服务错误到 HTTP 状态码的映射
func (ctl *ProductController) writeCatalogError(c *gin.Context, err error) {
	var storageErr *service.StorageError
	switch {
	case errors.Is(err, service.ErrImageRequired):
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "Product image is required"})
	case errors.As(err, &storageErr):
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": err.Error()})
	case appwrite.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"code": 409, "message": "同名商品已存在 (slug 冲突)"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": err.Error()})
	}
}
