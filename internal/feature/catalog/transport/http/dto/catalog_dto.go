// Package dto はcatalogフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// BookResponse はカタログで解決した書誌レコードを表します。
type BookResponse struct {
	Title            string `json:"title"`
	Author           string `json:"author"`
	FirstPublishYear int    `json:"first_publish_year,omitempty"`
	ISBN             string `json:"isbn,omitempty"`
}

// SearchResponse は /v1/catalog/search のレスポンスボディです。
// 一致がない場合もHTTP 200でFound=falseを返します。
type SearchResponse struct {
	Found bool          `json:"found"`
	Book  *BookResponse `json:"book,omitempty"`
}

// DescribeReq は /v1/catalog/describe のリクエストボディを表します。
type DescribeReq struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author"`
}

// DescribeResponse は /v1/catalog/describe のレスポンスボディです。
type DescribeResponse struct {
	Title   string `json:"title"`
	Author  string `json:"author,omitempty"`
	Summary string `json:"summary"`
}
