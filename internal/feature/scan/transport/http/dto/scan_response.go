// Package dto はscanフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RegionResponse は元フレーム座標系の1テキストリージョンを表します。
type RegionResponse struct {
	Text       string `json:"text"`
	Confidence int    `json:"confidence"`
	Left       int    `json:"left"`
	Top        int    `json:"top"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// HintResponse は推定した書誌ヒントを表します。未設定のフィールドは省略されます。
type HintResponse struct {
	CallNumber string `json:"call_number,omitempty"`
	TitleHint  string `json:"title_hint,omitempty"`
	AuthorHint string `json:"author_hint,omitempty"`
}

// BookResponse はカタログで解決した書誌レコードを表します。
type BookResponse struct {
	Title            string `json:"title"`
	Author           string `json:"author"`
	FirstPublishYear int    `json:"first_publish_year,omitempty"`
	ISBN             string `json:"isbn,omitempty"`
}

// ScanResponse は /v1/scan のレスポンスボディです。
// テキストが見つからなかった場合もHTTP 200でFound=falseを返します。
type ScanResponse struct {
	Found   bool             `json:"found"`
	Mode    string           `json:"mode"`
	Text    string           `json:"text,omitempty"`
	Regions []RegionResponse `json:"regions,omitempty"`
	Hint    HintResponse     `json:"hint"`
	Book    *BookResponse    `json:"book,omitempty"`
}
