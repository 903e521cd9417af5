package router

import (
	"github.com/gin-gonic/gin"

	cataloghandler "book_scanner/internal/feature/catalog/transport/handler"
	deviceauthhandler "book_scanner/internal/feature/deviceauth/transport/handler"
	scanhandler "book_scanner/internal/feature/scan/transport/handler"
	"book_scanner/internal/platform/http/handler"
	jwtmw "book_scanner/internal/platform/jwt"
)

func NewRouter(deviceAuth *deviceauthhandler.DeviceAuthHandler, scan *scanhandler.ScanHandler,
	catalog *cataloghandler.CatalogHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// デバイストークン発行
	r.POST("/v1/device/token", deviceAuth.IssueToken)

	// 認証必須のルート
	// スキャナデバイスのトークンが必要になる
	v1 := r.Group("/v1")
	v1.Use(jwtmw.AuthRequired())
	{
		v1.POST("/scan", scan.Scan)
		v1.GET("/catalog/search", catalog.Search)
		v1.POST("/catalog/describe", catalog.Describe)
	}

	return r
}
