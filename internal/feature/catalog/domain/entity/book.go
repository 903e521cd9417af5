// Package entity はcatalogフィーチャーのドメインモデルを定義します。
package entity

// Book は外部カタログで解決した書誌レコードを表します。
type Book struct {
	Title            string
	Author           string
	FirstPublishYear int
	ISBN             string
}
