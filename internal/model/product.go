package model

import "time"

// ==================== 商品分类 ====================

// 商品分类枚举
const (
	CategoryPhones    = "phones"
	CategoryLaptops   = "laptops"
	CategoryAudio     = "audio"
	CategoryWearables = "wearables"
	CategoryCameras   = "cameras"
)

// Categories 全部合法分类
var Categories = []string{
	CategoryPhones,
	CategoryLaptops,
	CategoryAudio,
	CategoryWearables,
	CategoryCameras,
}

// IsValidCategory 分类合法性检查
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ==================== 商品 ====================

// Product 商品文档，slug 即文档主键 ($id)
// status: true=上架 false=草稿
type Product struct {
	Slug          string    `json:"$id"`
	Name          string    `json:"name"`
	SlugAttr      string    `json:"slug"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Quantity      int       `json:"quantity"`
	Category      string    `json:"category"`
	Status        bool      `json:"status"`
	FeaturedImage string    `json:"featuredImage"`
	CreatedAt     time.Time `json:"$createdAt"`
	UpdatedAt     time.Time `json:"$updatedAt"`
}
