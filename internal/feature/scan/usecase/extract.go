package usecase

import (
	"strings"

	"book_scanner/internal/feature/scan/domain/entity"
)

const (
	// DefaultConfidenceThreshold は採用する検出の信頼度の下限（この値より大きいこと）です。
	DefaultConfidenceThreshold = 40
	// DefaultMinTextLength はトリム後テキストの最低文字数です。
	DefaultMinTextLength = 2
)

// ExtractRegions は生の検出列を信頼度と文字数でフィルタし、
// 座標を前処理済み画像の座標系から元フレームの座標系へ戻します。
//
// 採用条件: len(trim(text)) >= minTextLength かつ confidence > confidenceThreshold。
// 条件を満たさない検出はノイズとして黙って捨てます（エラーではない）。
// 検出順はエンジンの返却順のまま保持します。
//
// 戻り値は採用されたリージョン列、スペース結合した全テキスト、
// 1件以上採用されたかどうかのフラグです。
func ExtractRegions(detections []entity.Detection, scaleFactor, confidenceThreshold, minTextLength int) ([]entity.TextRegion, string, bool) {
	if scaleFactor <= 0 {
		// 前処理の拡大率と対になる値なので、非正はプログラミングエラー
		panic("scan: scale factor must be positive")
	}

	regions := make([]entity.TextRegion, 0, len(detections))
	texts := make([]string, 0, len(detections))
	for _, d := range detections {
		text := strings.TrimSpace(d.Text)
		if len(text) < minTextLength || d.Confidence <= confidenceThreshold {
			continue
		}

		// 前処理で拡大した分を整数除算で戻す
		regions = append(regions, entity.TextRegion{
			Text:       text,
			Confidence: d.Confidence,
			Left:       d.Left / scaleFactor,
			Top:        d.Top / scaleFactor,
			Width:      d.Width / scaleFactor,
			Height:     d.Height / scaleFactor,
		})
		texts = append(texts, text)
	}

	return regions, strings.Join(texts, " "), len(regions) > 0
}
