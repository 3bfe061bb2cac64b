package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yashwardhan0703/ecomerce-backend/cache"
	"github.com/yashwardhan0703/ecomerce-backend/controllers"
	"github.com/yashwardhan0703/ecomerce-backend/database"
	"github.com/yashwardhan0703/ecomerce-backend/logger"
	"github.com/yashwardhan0703/ecomerce-backend/middleware"
	"github.com/yashwardhan0703/ecomerce-backend/repository"
	"github.com/yashwardhan0703/ecomerce-backend/routes"
	"github.com/yashwardhan0703/ecomerce-backend/services"
	"github.com/yashwardhan0703/ecomerce-backend/storage"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.Connect(cfg.MongoURI, cfg.MongoDB); err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer database.Close()

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(indexCtx); err != nil {
		zap.L().Fatal("Failed to create indexes", zap.Error(err))
	}
	cancelIndex()

	redisClient, err := database.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		zap.L().Warn("Redis unavailable, catalog cache disabled", zap.Error(err))
	}
	catalogCache := cache.NewCatalogCache(redisClient)

	uploader, err := newUploader(cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize media storage", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewMongoUserRepository(database.DB)
	categoryRepo := repository.NewMongoCategoryRepository(database.DB)
	subcategoryRepo := repository.NewMongoSubcategoryRepository(database.DB)
	productRepo := repository.NewMongoProductRepository(database.DB)
	cartRepo := repository.NewMongoCartRepository(database.DB)
	wishlistRepo := repository.NewMongoWishlistRepository(database.DB)
	orderRepo := repository.NewMongoOrderRepository(database.DB)
	newsletterRepo := repository.NewMongoNewsletterRepository(database.DB)

	// Services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, logger.Log)
	catalogService := services.NewCatalogService(categoryRepo, subcategoryRepo, logger.Log)
	productService := services.NewProductService(productRepo, subcategoryRepo, logger.Log)
	cartService := services.NewCartService(cartRepo, productRepo, logger.Log)
	orderService := services.NewOrderService(orderRepo, cartRepo, productRepo, logger.Log)
	wishlistService := services.NewWishlistService(wishlistRepo, productRepo, logger.Log)
	newsletterService := services.NewNewsletterService(newsletterRepo, logger.Log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Locally stored media is served straight from the upload directory.
	if cfg.S3Bucket == "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	routes.Register(r, routes.Controllers{
		Auth:       controllers.NewAuthController(authService),
		Category:   controllers.NewCategoryController(catalogService, uploader),
		Product:    controllers.NewProductController(productService, catalogCache, uploader),
		Cart:       controllers.NewCartController(cartService),
		Order:      controllers.NewOrderController(orderService),
		Wishlist:   controllers.NewWishlistController(wishlistService),
		Newsletter: controllers.NewNewsletterController(newsletterService, uploader),
	}, cfg.JWTSecret)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zap.L().Error("Failed to close Redis", zap.Error(err))
		}
	}

	zap.L().Info("Server stopped gracefully")
}

// newUploader selects the media storage backend: S3 when a bucket is
// configured, local disk otherwise.
func newUploader(cfg *Config) (storage.Uploader, error) {
	if cfg.S3Bucket != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return storage.NewS3Uploader(ctx, cfg.S3Bucket, cfg.AWSRegion)
	}
	return storage.NewLocalUploader(cfg.UploadDir, cfg.PublicBaseURL)
}
