// Package dto はOpen Library APIのレスポンス構造を定義します。
package dto

// SearchResponse は /search.json のレスポンスを表します。
type SearchResponse struct {
	NumFound int   `json:"numFound"`
	Docs     []Doc `json:"docs"`
}

// Doc は検索結果の1件を表します。
type Doc struct {
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	ISBN             []string `json:"isbn"`
}
