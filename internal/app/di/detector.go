// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"os"
	"time"

	"book_scanner/internal/feature/scan/adapters/tesseract"
	"book_scanner/internal/feature/scan/adapters/vision"
	scanusecase "book_scanner/internal/feature/scan/usecase"
	"book_scanner/internal/shared/ratelimiter"
)

// visionCallsPerMinute caps outbound Cloud Vision requests.
const visionCallsPerMinute = 30

// NewTextDetector creates the OCR backend selected by the OCR_BACKEND
// environment variable ("vision" or "tesseract"; tesseract is the default).
// The returned cleanup func releases backend resources and is always non-nil.
func NewTextDetector(ctx context.Context) (scanusecase.TextDetector, func(), error) {
	switch os.Getenv("OCR_BACKEND") {
	case "vision":
		limiter := ratelimiter.NewRateLimiter(visionCallsPerMinute, time.Minute)
		detector, err := vision.NewVisionTextDetector(ctx, limiter)
		if err != nil {
			return nil, nil, err
		}
		return detector, func() { _ = detector.Close() }, nil
	default:
		detector := tesseract.NewTesseractDetector(tesseract.LoadConfig())
		return detector, func() {}, nil
	}
}
