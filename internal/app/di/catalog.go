package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"book_scanner/internal/feature/catalog/adapters/gemini"
	"book_scanner/internal/feature/catalog/adapters/openlibrary"
	catalogusecase "book_scanner/internal/feature/catalog/usecase"
	"book_scanner/internal/platform/cache"
	infrahttp "book_scanner/internal/platform/http"
	"book_scanner/internal/shared/ratelimiter"
)

// geminiCallsPerMinute caps outbound Gemini requests.
const geminiCallsPerMinute = 10

// NewCatalogRepository creates the Open Library client with the shared HTTP
// client and wraps it with Redis caching. A nil Redis client disables caching.
func NewCatalogRepository(rdb *redis.Client) catalogusecase.CatalogRepository {
	cfg := openlibrary.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	repo := openlibrary.NewOpenLibraryCatalog(cfg, httpClient)
	return cache.NewCachingCatalogRepository(rdb, 24*time.Hour, repo, "catalog")
}

// NewBookDescriber creates the Gemini-backed book describer. When Gemini is
// not configured the describer is nil and /v1/catalog/describe is disabled;
// the rest of the service keeps working.
func NewBookDescriber(ctx context.Context) catalogusecase.BookDescriber {
	limiter := ratelimiter.NewRateLimiter(geminiCallsPerMinute, time.Minute)
	describer, err := gemini.NewGeminiDescriber(ctx, limiter)
	if err != nil {
		slog.Warn("gemini unavailable; book descriptions disabled", "error", err)
		return nil
	}
	return describer
}
