package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment variables for the backend.
type Config struct {
	Port          string // HTTP port (default: 8080)
	Env           string // "production" or "development"
	MongoURI      string // MongoDB connection string
	MongoDB       string // database name
	JWTSecret     string // JWT signing secret
	RedisAddr     string // optional Redis address for the catalog cache
	UploadDir     string // local directory for uploaded media
	PublicBaseURL string // base URL used to build public media links
	S3Bucket      string // if set, media is stored in S3 instead of local disk
	AWSRegion     string
}

// LoadConfig loads environment variables into Config struct and validates them.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "ecommerce"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
