package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config 控制台运行配置，全部来自环境变量 (.env 仅本地开发使用)
type Config struct {
	Port          string
	SessionSecret string

	// 唯一允许登录控制台的管理员邮箱
	AdminEmail string

	// BaaS 连接
	AppwriteEndpoint string
	AppwriteProject  string
	AppwriteAPIKey   string

	// 数据定位
	DatabaseID         string
	CollectionProducts string
	CollectionOrders   string
	// 预留的扩展点，当前没有任何代码读取它
	CollectionProfiles string
	BucketImages       string
}

// LoadConfig 加载配置；生产环境无 .env 文件时直接读系统环境变量
func LoadConfig() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("加载 .env 失败: %v", err)
		}
	}

	return &Config{
		Port:          getEnv("SERVER_PORT", "8080"),
		SessionSecret: getEnv("SESSION_SECRET", "gearhive-admin-secret-change-in-production"),

		AdminEmail: getEnv("ADMIN_EMAIL", "gearhiveofficial@gmail.com"),

		AppwriteEndpoint: getEnv("APPWRITE_ENDPOINT", "https://cloud.appwrite.io/v1"),
		AppwriteProject:  getEnv("APPWRITE_PROJECT_ID", ""),
		AppwriteAPIKey:   getEnv("APPWRITE_API_KEY", ""),

		DatabaseID:         getEnv("APPWRITE_DATABASE_ID", ""),
		CollectionProducts: getEnv("APPWRITE_COLLECTION_PRODUCTS", "products"),
		CollectionOrders:   getEnv("APPWRITE_COLLECTION_ORDERS", "orders"),
		CollectionProfiles: getEnv("APPWRITE_COLLECTION_PROFILES", "profiles"),
		BucketImages:       getEnv("APPWRITE_BUCKET_IMAGES", "product-images"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
