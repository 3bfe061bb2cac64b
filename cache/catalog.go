package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	productCachePrefix     = "product:detail:"
	productListCachePrefix = "products:v:"
	cacheVersionKey        = "products:version"

	defaultTTL = 5 * time.Minute
)

// CatalogCache is a Redis read cache for the product catalog. List entries are
// versioned: a write anywhere in the catalog bumps the version, orphaning every
// cached list at once. All methods are safe on a nil receiver, so the cache is
// simply absent when Redis is not configured.
type CatalogCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCatalogCache(client *redis.Client) *CatalogCache {
	if client == nil {
		return nil
	}
	return &CatalogCache{redis: client, ttl: defaultTTL}
}

// GetProduct returns the cached detail payload for a product, if present.
func (c *CatalogCache) GetProduct(ctx context.Context, productID string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.redis.Get(ctx, productCachePrefix+productID).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetProduct caches a product detail payload asynchronously.
func (c *CatalogCache) SetProduct(productID string, payload interface{}) {
	if c == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data, err := json.Marshal(payload)
		if err != nil {
			zap.L().Warn("Failed to marshal product for cache", zap.Error(err))
			return
		}
		if err := c.redis.Set(bgCtx, productCachePrefix+productID, data, c.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product", zap.Error(err), zap.String("product_id", productID))
		}
	}()
}

// GetProductList returns a cached list payload for the given key, if present.
func (c *CatalogCache) GetProductList(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	version, err := c.version(ctx)
	if err != nil {
		return nil, false
	}
	data, err := c.redis.Get(ctx, c.listKey(version, key)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetProductList caches a list payload asynchronously under the current
// version.
func (c *CatalogCache) SetProductList(key string, payload interface{}) {
	if c == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := c.version(bgCtx)
		if err != nil {
			return
		}
		data, err := json.Marshal(payload)
		if err != nil {
			zap.L().Warn("Failed to marshal product list for cache", zap.Error(err))
			return
		}
		if err := c.redis.Set(bgCtx, c.listKey(version, key), data, c.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}

// InvalidateProduct bumps the list version and drops the product's detail
// entry.
func (c *CatalogCache) InvalidateProduct(ctx context.Context, productID string) {
	if c == nil {
		return
	}
	if err := c.redis.Incr(ctx, cacheVersionKey).Err(); err != nil {
		zap.L().Warn("Failed to bump catalog cache version", zap.Error(err))
	}
	if productID != "" {
		if err := c.redis.Del(ctx, productCachePrefix+productID).Err(); err != nil {
			zap.L().Warn("Failed to delete product cache", zap.Error(err), zap.String("product_id", productID))
		}
	}
}

func (c *CatalogCache) version(ctx context.Context) (int64, error) {
	ver, err := c.redis.Get(ctx, cacheVersionKey).Int64()
	if err == redis.Nil {
		if err := c.redis.Set(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}

func (c *CatalogCache) listKey(version int64, key string) string {
	return fmt.Sprintf("%s%d:%s", productListCachePrefix, version, key)
}
