package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"book_scanner/internal/app/di"
	"book_scanner/internal/app/router"
	cataloghandler "book_scanner/internal/feature/catalog/transport/handler"
	catalogusecase "book_scanner/internal/feature/catalog/usecase"
	deviceauthhandler "book_scanner/internal/feature/deviceauth/transport/handler"
	deviceauthusecase "book_scanner/internal/feature/deviceauth/usecase"
	"book_scanner/internal/feature/scan/adapters/opencv"
	scanhandler "book_scanner/internal/feature/scan/transport/handler"
	scanusecase "book_scanner/internal/feature/scan/usecase"
	jwtmw "book_scanner/internal/platform/jwt"
	infraredis "book_scanner/internal/platform/redis"
)

// tokenTTL はデバイストークンの有効期間です。
const tokenTTL = 12 * time.Hour

func main() {
	// .env（ローカル開発用、存在しなければ無視）
	_ = godotenv.Load()

	ctx := context.Background()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// OCRバックエンド（OCR_BACKEND: tesseract | vision）
	detector, cleanup, err := di.NewTextDetector(ctx)
	if err != nil {
		log.Fatal("failed to initialize OCR backend:", err)
	}
	defer cleanup()

	// カタログ（Open Library + Redisキャッシュ、Gemini紹介文は任意）
	catalogRepo := di.NewCatalogRepository(rdb)
	describer := di.NewBookDescriber(ctx)

	// Usecase
	catalogUC := catalogusecase.NewCatalogUsecase(catalogRepo, describer)
	scanUC := scanusecase.NewScanUsecase(opencv.NewPreprocessor(), detector, catalogUC)
	deviceAuthUC := deviceauthusecase.NewDeviceAuthUsecase(
		deviceauthusecase.LoadConfig(),
		jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), tokenTTL),
	)

	// Handler
	scanH := scanhandler.NewScanHandler(scanUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)
	deviceAuthH := deviceauthhandler.NewDeviceAuthHandler(deviceAuthUC)

	// ルータ生成
	router := router.NewRouter(deviceAuthH, scanH, catalogH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
