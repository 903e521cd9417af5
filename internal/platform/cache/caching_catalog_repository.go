// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"book_scanner/internal/feature/catalog/domain/entity"
	"book_scanner/internal/feature/catalog/usecase"
)

// CachingCatalogRepository decorates a CatalogRepository with Redis caching.
// Catalog records are effectively immutable, so entries are only ever
// written on a miss and expire by TTL; there is no invalidation path.
type CachingCatalogRepository struct {
	inner     usecase.CatalogRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingCatalogRepositoryがCatalogRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CatalogRepository = (*CachingCatalogRepository)(nil)

// NewCachingCatalogRepository decorates a CatalogRepository with Redis caching.
// If ttl is 0, it defaults to 24 hours. If namespace is empty, it uses "catalog".
func NewCachingCatalogRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CatalogRepository, namespace string) *CachingCatalogRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if namespace == "" {
		namespace = "catalog"
	}
	return &CachingCatalogRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Search retrieves a book record, checking cache first then falling back
// to the external catalog. Only successful matches are cached; misses and
// failures always go back to the catalog on the next call.
func (c *CachingCatalogRepository) Search(ctx context.Context, title, author string) (*entity.Book, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Search(ctx, title, author)
	}

	key := c.cacheKey(title, author)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Book
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the external catalog
	out, err := c.inner.Search(ctx, title, author)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific hint pair.
func (c *CachingCatalogRepository) cacheKey(title, author string) string {
	return fmt.Sprintf("%s:%s:%s",
		c.namespace,
		safe(title),
		safe(author),
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
