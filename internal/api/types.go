// Package api はHTTPトランスポート層で共有するレスポンス型を定義します。
package api

// ErrorResponse は全エンドポイント共通のエラーレスポンスボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}
