// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"book_scanner/internal/api"
	"book_scanner/internal/feature/catalog/domain/entity"
	"book_scanner/internal/feature/catalog/transport/http/dto"
	"book_scanner/internal/feature/catalog/usecase"
)

// CatalogUsecase は書誌解決・紹介文生成のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CatalogUsecase interface {
	Lookup(ctx context.Context, titleHint, authorHint string) (*entity.Book, bool)
	Describe(ctx context.Context, title, author string) (string, error)
}

// CatalogHandler はカタログのHTTPリクエストを処理します。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler はCatalogHandlerの新しいインスタンスを生成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Search はタイトル・著者のヒントから書誌レコードを検索します。
//
// エンドポイント例:
// GET /v1/catalog/search?title=The+Great+Gatsby&author=Fitzgerald
func (h *CatalogHandler) Search(c *gin.Context) {
	title := c.Query("title")
	author := c.Query("author")
	if title == "" && author == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "title または author が必要です"})
		return
	}

	book, ok := h.uc.Lookup(c.Request.Context(), title, author)
	if !ok {
		// 一致なしはエラーではなくfound=false
		c.JSON(http.StatusOK, dto.SearchResponse{Found: false})
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Found: true,
		Book: &dto.BookResponse{
			Title:            book.Title,
			Author:           book.Author,
			FirstPublishYear: book.FirstPublishYear,
			ISBN:             book.ISBN,
		},
	})
}

// Describe は書籍の紹介文を生成します。
//
// エンドポイント: POST /v1/catalog/describe
// Content-Type: application/json
func (h *CatalogHandler) Describe(c *gin.Context) {
	var req dto.DescribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("紹介文リクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "title が必要です"})
		return
	}

	summary, err := h.uc.Describe(c.Request.Context(), req.Title, req.Author)
	if err != nil {
		if errors.Is(err, usecase.ErrDescriberUnavailable) {
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "紹介文生成は利用できません"})
			return
		}
		slog.Error("紹介文の生成に失敗", "error", err, "title", req.Title)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "紹介文の生成に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, dto.DescribeResponse{
		Title:   req.Title,
		Author:  req.Author,
		Summary: summary,
	})
}
