// Package vision はGoogle Cloud Vision APIを使用したテキスト検出クライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"book_scanner/internal/feature/scan/domain/entity"
	"book_scanner/internal/feature/scan/usecase"
	"book_scanner/internal/shared/ratelimiter"
)

// wordConfidence はVisionの単語アノテーションに割り当てる信頼度です。
// TEXT_DETECTIONは単語単位の信頼度を報告しないため、返されたアノテーションは
// エンジンが採用済みのテキストとみなし、しきい値を確実に超える固定値を使います。
const wordConfidence = 90

// VisionTextDetector はGoogle Cloud Vision APIでテキストを検出します。
type VisionTextDetector struct {
	client  *gvision.ImageAnnotatorClient
	limiter ratelimiter.RateLimiterInterface
}

// VisionTextDetectorがTextDetectorを実装していることをコンパイル時に検証します。
var _ usecase.TextDetector = (*VisionTextDetector)(nil)

// NewVisionTextDetector はADCを使用してVisionTextDetectorの新しいインスタンスを生成します。
// limiterはnil可で、指定した場合はAPI呼び出しの頻度を制限します。
func NewVisionTextDetector(ctx context.Context, limiter ratelimiter.RateLimiterInterface) (*VisionTextDetector, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionTextDetector{client: client, limiter: limiter}, nil
}

// Close はVision APIクライアントを解放します。
func (v *VisionTextDetector) Close() error {
	return v.client.Close()
}

// DetectText は画像バイト列からテキストを検出します。
// 最初のアノテーションは全文ブロック、残りが単語単位の検出です。
func (v *VisionTextDetector) DetectText(ctx context.Context, imageData []byte) (entity.DetectionResult, error) {
	if v.limiter != nil {
		v.limiter.WaitIfNeeded()
	}

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_TEXT_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return entity.DetectionResult{}, fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return entity.DetectionResult{}, nil
	}
	if resp.Responses[0].Error != nil {
		return entity.DetectionResult{}, fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	annotations := resp.Responses[0].TextAnnotations
	if len(annotations) == 0 {
		return entity.DetectionResult{}, nil
	}

	detections := make([]entity.Detection, 0, len(annotations)-1)
	for _, ann := range annotations[1:] {
		left, top, width, height := boundsOf(ann.GetBoundingPoly())
		detections = append(detections, entity.Detection{
			Text:       ann.GetDescription(),
			Confidence: wordConfidence,
			Left:       left,
			Top:        top,
			Width:      width,
			Height:     height,
		})
	}

	return entity.DetectionResult{
		FullText:   annotations[0].GetDescription(),
		Detections: detections,
	}, nil
}

// boundsOf はバウンディングポリゴンを外接矩形(left, top, width, height)に変換します。
func boundsOf(poly *visionpb.BoundingPoly) (int, int, int, int) {
	vertices := poly.GetVertices()
	if len(vertices) == 0 {
		return 0, 0, 0, 0
	}

	minX, minY := vertices[0].GetX(), vertices[0].GetY()
	maxX, maxY := minX, minY
	for _, v := range vertices[1:] {
		if x := v.GetX(); x < minX {
			minX = x
		} else if x > maxX {
			maxX = x
		}
		if y := v.GetY(); y < minY {
			minY = y
		} else if y > maxY {
			maxY = y
		}
	}

	return int(minX), int(minY), int(maxX - minX), int(maxY - minY)
}
