package dto

import "time"

// CreateProductForm 创建商品表单 (multipart)，图片文件单独取
// 创建时库存至少 1
type CreateProductForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Price       float64 `form:"price" binding:"gte=0"`
	Quantity    int     `form:"quantity" binding:"gte=1"`
	Category    string  `form:"category" binding:"required,oneof=phones laptops audio wearables cameras"`
	Status      bool    `form:"status"`
}

// UpdateProductForm 编辑商品表单，编辑时库存允许 0
type UpdateProductForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Price       float64 `form:"price" binding:"gte=0"`
	Quantity    int     `form:"quantity" binding:"gte=0"`
	Category    string  `form:"category" binding:"required,oneof=phones laptops audio wearables cameras"`
	Status      bool    `form:"status"`
}

// ListProductsQuery 商品列表查询参数
type ListProductsQuery struct {
	Keyword  string `form:"q"`
	Category string `form:"category"`
	// "" | "active" | "draft"
	Status string `form:"status" binding:"omitempty,oneof=active draft"`
}

// ProductResp 商品响应
type ProductResp struct {
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Quantity      int       `json:"quantity"`
	Category      string    `json:"category"`
	Status        bool      `json:"status"`
	FeaturedImage string    `json:"featured_image"`
	ImageURL      string    `json:"image_url"`
	PreviewURL    string    `json:"preview_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
