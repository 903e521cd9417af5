// Package usecase はscanフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	catalogentity "book_scanner/internal/feature/catalog/domain/entity"
	"book_scanner/internal/feature/scan/domain/entity"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
)

// FramePreprocessor はOCR前の画像変換を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type FramePreprocessor interface {
	// Preprocess は指定モードでフレームを変換し、処理済み画像と
	// 適用した拡大率を返します。座標の逆変換はこの拡大率で行います。
	Preprocess(imageData []byte, mode entity.ProcessingMode) ([]byte, int, error)
}

// TextDetector は処理済み画像からテキストを検出するOCRエンジンを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TextDetector interface {
	// DetectText は画像バイト列からテキストを検出します。
	// テキストが見つからない場合は空のDetectionResultを返します（エラーではない）。
	DetectText(ctx context.Context, imageData []byte) (entity.DetectionResult, error)
}

// CatalogResolver はヒントから正規の書誌情報を解決します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CatalogResolver interface {
	// Lookup はヒントに一致する書誌レコードを最大1件返します。
	// 一致なし・外部障害はいずれも ok=false で通知されます。
	Lookup(ctx context.Context, titleHint, authorHint string) (*catalogentity.Book, bool)
}

// scanUsecase はスキャンパイプラインのビジネスロジックを提供します。
type scanUsecase struct {
	preprocessor FramePreprocessor
	detector     TextDetector
	catalog      CatalogResolver
}

// NewScanUsecase はscanUsecaseの新しいインスタンスを生成します。
// catalogはnil可で、その場合は書誌解決をスキップします。
func NewScanUsecase(preprocessor FramePreprocessor, detector TextDetector, catalog CatalogResolver) *scanUsecase {
	return &scanUsecase{
		preprocessor: preprocessor,
		detector:     detector,
		catalog:      catalog,
	}
}

// Scan はフレームを前処理し、OCR結果をフィルタ・座標変換し、
// 書誌ヒントを推定して、可能であればカタログで解決します。
//
// OCRエンジンやカタログの外部障害はエラーとして伝播せず、
// Found=falseの結果に変換します。エラーを返すのは入力自体が
// 不正な場合（空・サイズ超過・デコード不能）のみです。
func (u *scanUsecase) Scan(ctx context.Context, imageData []byte, mode entity.ProcessingMode) (*entity.ScanResult, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
	}

	processed, scale, err := u.preprocessor.Preprocess(imageData, mode)
	if err != nil {
		return nil, fmt.Errorf("preprocess failed: %w", err)
	}

	detected, err := u.detector.DetectText(ctx, processed)
	if err != nil {
		// 外部エンジンの障害は「テキストなし」として扱う
		slog.Warn("text detection failed", "mode", mode, "error", err)
		return &entity.ScanResult{Mode: mode}, nil
	}

	regions, joined, found := ExtractRegions(detected.Detections, scale, DefaultConfidenceThreshold, DefaultMinTextLength)
	result := &entity.ScanResult{
		Found:   found,
		Mode:    mode,
		Text:    joined,
		Regions: regions,
	}
	if !found {
		slog.Info("no text detected", "mode", mode)
		return result, nil
	}

	// 行分割はエンジンの全文（改行あり）を優先し、なければ結合テキストを使う
	lines := SplitLines(detected.FullText)
	if len(lines) == 0 {
		lines = SplitLines(joined)
	}
	result.Hint = ParseHint(lines)

	if u.catalog != nil {
		if book, ok := u.catalog.Lookup(ctx, result.Hint.TitleHint, result.Hint.AuthorHint); ok {
			result.Book = book
		}
	}

	return result, nil
}
