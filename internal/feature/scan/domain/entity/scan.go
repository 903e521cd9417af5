// Package entity はscanフィーチャーのドメインモデルを定義します。
package entity

import (
	catalogentity "book_scanner/internal/feature/catalog/domain/entity"
)

// ProcessingMode はOCR前に適用する前処理戦略を選択します。
type ProcessingMode string

const (
	// ModeMinimal はグレースケール化と拡大のみを行います。
	ModeMinimal ProcessingMode = "minimal"
	// ModeBalanced はCLAHEと二値化を追加します（無地の背景の印刷文字向け）。
	ModeBalanced ProcessingMode = "balanced"
	// ModeTopHat はトップハット変換を追加します（色付き・模様付きの背表紙向け）。
	ModeTopHat ProcessingMode = "tophat"
)

// Detection はOCRエンジンが認識した1トークンを表します。
// 座標は前処理済み画像のピクセル座標系です。
type Detection struct {
	Text       string
	Confidence int // 0〜100。エンジンがテキストなしと報告した場合は-1
	Left       int
	Top        int
	Width      int
	Height     int
}

// TextRegion は信頼度フィルタを通過したDetectionを、
// 元フレームの座標系に変換したものです。
type TextRegion struct {
	Text       string
	Confidence int
	Left       int
	Top        int
	Width      int
	Height     int
}

// DetectionResult はOCRエンジンの生出力を表します。
// FullTextはエンジンが返す改行区切りの全文、Detectionsはエンジンの返却順のままの単語列です。
type DetectionResult struct {
	FullText   string
	Detections []Detection
}

// Hint は認識テキストから推定した書誌ヒントです。
// 空文字列は「未設定」を意味します。
type Hint struct {
	CallNumber string
	TitleHint  string
	AuthorHint string
}

// ScanResult は1回のスキャンの結果を表します。
// テキストが見つからなかった場合はFound=falseで、エラーにはなりません。
type ScanResult struct {
	Found   bool
	Mode    ProcessingMode
	Text    string
	Regions []TextRegion
	Hint    Hint
	Book    *catalogentity.Book
}
