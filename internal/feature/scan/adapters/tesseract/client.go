// Package tesseract はローカルのTesseractエンジンを使用したテキスト検出クライアントを提供します。
package tesseract

import (
	"context"
	"fmt"
	"os"

	"github.com/otiai10/gosseract/v2"

	"book_scanner/internal/feature/scan/domain/entity"
	"book_scanner/internal/feature/scan/usecase"
)

// Config holds configuration for the Tesseract OCR backend.
type Config struct {
	Language string // Tesseract language code (e.g., "eng")
}

// LoadConfig loads Tesseract configuration from environment variables.
func LoadConfig() Config {
	lang := os.Getenv("TESSERACT_LANG")
	if lang == "" {
		lang = "eng"
	}
	return Config{Language: lang}
}

// TesseractDetector はTesseractで単語単位のテキスト検出を行います。
type TesseractDetector struct {
	cfg Config
}

// TesseractDetectorがTextDetectorを実装していることをコンパイル時に検証します。
var _ usecase.TextDetector = (*TesseractDetector)(nil)

// NewTesseractDetector はTesseractDetectorの新しいインスタンスを生成します。
func NewTesseractDetector(cfg Config) *TesseractDetector {
	return &TesseractDetector{cfg: cfg}
}

// DetectText は画像バイト列からテキストを検出します。
// ページセグメンテーションはスパーステキスト（PSM 11）で、
// 背表紙のように散在するラベルの認識に向いています。
func (t *TesseractDetector) DetectText(ctx context.Context, imageData []byte) (entity.DetectionResult, error) {
	if err := ctx.Err(); err != nil {
		return entity.DetectionResult{}, err
	}

	client := gosseract.NewClient()
	defer func() {
		_ = client.Close()
	}()

	if err := client.SetLanguage(t.cfg.Language); err != nil {
		return entity.DetectionResult{}, fmt.Errorf("set tesseract language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SPARSE_TEXT); err != nil {
		return entity.DetectionResult{}, fmt.Errorf("set tesseract page seg mode: %w", err)
	}
	if err := client.SetImageFromBytes(imageData); err != nil {
		return entity.DetectionResult{}, fmt.Errorf("set tesseract image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return entity.DetectionResult{}, fmt.Errorf("tesseract bounding boxes: %w", err)
	}

	detections := make([]entity.Detection, 0, len(boxes))
	for _, b := range boxes {
		detections = append(detections, entity.Detection{
			Text:       b.Word,
			Confidence: int(b.Confidence),
			Left:       b.Box.Min.X,
			Top:        b.Box.Min.Y,
			Width:      b.Box.Dx(),
			Height:     b.Box.Dy(),
		})
	}

	fullText, err := client.Text()
	if err != nil {
		return entity.DetectionResult{}, fmt.Errorf("tesseract text: %w", err)
	}

	return entity.DetectionResult{FullText: fullText, Detections: detections}, nil
}
