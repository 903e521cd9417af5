// Package dto はdeviceauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// TokenReq は/v1/device/tokenエンドポイントのリクエストボディを表します。
type TokenReq struct {
	DeviceID  string `json:"device_id" binding:"required"`
	DeviceKey string `json:"device_key" binding:"required"`
}

// TokenResponse は発行されたデバイストークンを表します。
type TokenResponse struct {
	Token string `json:"token"`
}
