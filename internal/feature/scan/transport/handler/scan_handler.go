// Package handler はscanフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"book_scanner/internal/api"
	"book_scanner/internal/feature/scan/domain/entity"
	"book_scanner/internal/feature/scan/transport/http/dto"
)

// ScanUsecase はスキャンパイプラインのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ScanUsecase interface {
	Scan(ctx context.Context, imageData []byte, mode entity.ProcessingMode) (*entity.ScanResult, error)
}

// ScanHandler はスキャンのHTTPリクエストを処理します。
type ScanHandler struct {
	uc ScanUsecase
}

// NewScanHandler はScanHandlerの新しいインスタンスを生成します。
func NewScanHandler(uc ScanUsecase) *ScanHandler {
	return &ScanHandler{uc: uc}
}

// Scan はフレーム画像をアップロードしてスキャンパイプラインを実行します。
//
// エンドポイント: POST /v1/scan
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）、mode（任意: minimal|balanced|tophat、デフォルトbalanced）
//
// OCRやカタログの外部障害はHTTP 200のfound=falseで返します。
// 4xxになるのは入力自体が不正な場合のみです。
func (h *ScanHandler) Scan(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "画像ファイルが必要です"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}

	mode := entity.ProcessingMode(c.DefaultPostForm("mode", string(entity.ModeBalanced)))

	result, err := h.uc.Scan(c.Request.Context(), imageData, mode)
	if err != nil {
		// ここに来るのは空画像・サイズ超過・デコード不能のみ（外部障害はfound=falseになる）
		slog.Warn("スキャンに失敗", "error", err, "mode", mode)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "処理できない画像です"})
		return
	}

	c.JSON(http.StatusOK, toScanResponse(result))
}

// toScanResponse はドメインのScanResultをレスポンスDTOに変換します。
func toScanResponse(result *entity.ScanResult) dto.ScanResponse {
	out := dto.ScanResponse{
		Found: result.Found,
		Mode:  string(result.Mode),
		Text:  result.Text,
		Hint: dto.HintResponse{
			CallNumber: result.Hint.CallNumber,
			TitleHint:  result.Hint.TitleHint,
			AuthorHint: result.Hint.AuthorHint,
		},
	}

	out.Regions = make([]dto.RegionResponse, 0, len(result.Regions))
	for _, r := range result.Regions {
		out.Regions = append(out.Regions, dto.RegionResponse{
			Text:       r.Text,
			Confidence: r.Confidence,
			Left:       r.Left,
			Top:        r.Top,
			Width:      r.Width,
			Height:     r.Height,
		})
	}

	if result.Book != nil {
		out.Book = &dto.BookResponse{
			Title:            result.Book.Title,
			Author:           result.Book.Author,
			FirstPublishYear: result.Book.FirstPublishYear,
			ISBN:             result.Book.ISBN,
		}
	}

	return out
}
