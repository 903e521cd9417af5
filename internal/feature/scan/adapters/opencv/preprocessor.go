// Package opencv はgocv(OpenCV)を使用したOCR前処理を提供します。
package opencv

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"book_scanner/internal/feature/scan/domain/entity"
	"book_scanner/internal/feature/scan/usecase"
)

const (
	// UpscaleFactor は全モード共通の拡大率です。
	// 抽出側の座標逆変換はこの値で除算するため、変更してはいけません。
	UpscaleFactor = 2

	claheClipLimit  = 2.0
	claheTileSize   = 8
	morphKernelSize = 15
)

// Preprocessor はOpenCVベースのFramePreprocessor実装です。
type Preprocessor struct{}

// PreprocessorがFramePreprocessorを実装していることをコンパイル時に検証します。
var _ usecase.FramePreprocessor = (*Preprocessor)(nil)

// NewPreprocessor はPreprocessorの新しいインスタンスを生成します。
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{}
}

// Preprocess はフレームをグレースケール化して2倍に拡大（キュービック補間）し、
// モードに応じた変換を適用します。戻り値は処理済み画像のPNGバイト列と拡大率です。
//
//   - minimal: 拡大したグレースケール画像をそのまま返す
//   - balanced: CLAHE(2.0, 8x8) + Otsuの二値化。白黒2値の画像になる
//   - tophat: 15x15のトップハット/ブラックハットで背景の模様を抑制し、CLAHEを適用
//
// 未知のモードはminimalと同じ動作に退避します（寛容なデフォルト）。
func (p *Preprocessor) Preprocess(imageData []byte, mode entity.ProcessingMode) ([]byte, int, error) {
	src, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err != nil {
		return nil, 0, fmt.Errorf("decode frame: %w", err)
	}
	defer closeMat(&src)
	if src.Empty() {
		return nil, 0, fmt.Errorf("decode frame: empty image")
	}

	gray := gocv.NewMat()
	defer closeMat(&gray)
	gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)

	upscaled := gocv.NewMat()
	defer closeMat(&upscaled)
	size := image.Pt(gray.Cols()*UpscaleFactor, gray.Rows()*UpscaleFactor)
	gocv.Resize(gray, &upscaled, size, 0, 0, gocv.InterpolationCubic)

	out := gocv.NewMat()
	defer closeMat(&out)
	switch mode {
	case entity.ModeBalanced:
		applyBalanced(upscaled, &out)
	case entity.ModeTopHat:
		applyTopHat(upscaled, &out)
	default:
		upscaled.CopyTo(&out)
	}

	buf, err := gocv.IMEncode(gocv.PNGFileExt, out)
	if err != nil {
		return nil, 0, fmt.Errorf("encode processed frame: %w", err)
	}
	defer buf.Close()

	data := make([]byte, buf.Len())
	copy(data, buf.GetBytes())
	return data, UpscaleFactor, nil
}

// applyBalanced はCLAHEで局所コントラストを正規化したあと、
// Otsuの自動しきい値で二値化します。
func applyBalanced(src gocv.Mat, dst *gocv.Mat) {
	enhanced := gocv.NewMat()
	defer closeMat(&enhanced)
	applyCLAHE(src, &enhanced)

	gocv.Threshold(enhanced, dst, 0, 255, gocv.ThresholdBinary+gocv.ThresholdOtsu)
}

// applyTopHat は小さな明構造（トップハット）を加算し、
// 小さな暗構造（ブラックハット）を減算して、ストロークスケールの
// ディテールを残したまま大域的な背景の模様を抑制します。
func applyTopHat(src gocv.Mat, dst *gocv.Mat) {
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(morphKernelSize, morphKernelSize))
	defer closeMat(&kernel)

	tophat := gocv.NewMat()
	defer closeMat(&tophat)
	gocv.MorphologyEx(src, &tophat, gocv.MorphTophat, kernel)

	blackhat := gocv.NewMat()
	defer closeMat(&blackhat)
	gocv.MorphologyEx(src, &blackhat, gocv.MorphBlackhat, kernel)

	combined := gocv.NewMat()
	defer closeMat(&combined)
	gocv.Add(src, tophat, &combined)
	gocv.Subtract(combined, blackhat, &combined)

	applyCLAHE(combined, dst)
}

// applyCLAHE はタイルベースのヒストグラム均等化を適用します。
func applyCLAHE(src gocv.Mat, dst *gocv.Mat) {
	clahe := gocv.NewCLAHEWithParams(claheClipLimit, image.Pt(claheTileSize, claheTileSize))
	defer clahe.Close()
	clahe.Apply(src, dst)
}

// closeMat はMatを解放します。deferでのエラー握りつぶしを1箇所に集約します。
func closeMat(m *gocv.Mat) {
	_ = m.Close()
}
