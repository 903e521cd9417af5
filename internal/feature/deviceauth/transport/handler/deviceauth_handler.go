// Package handler はdeviceauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"book_scanner/internal/api"
	"book_scanner/internal/feature/deviceauth/transport/http/dto"
	"book_scanner/internal/feature/deviceauth/usecase"
)

// DeviceAuthUsecase はデバイス認証のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type DeviceAuthUsecase interface {
	IssueToken(deviceID, deviceKey string) (string, error)
}

// DeviceAuthHandler はデバイス認証のHTTPリクエストを処理します。
type DeviceAuthHandler struct {
	uc DeviceAuthUsecase
}

// NewDeviceAuthHandler はDeviceAuthHandlerの新しいインスタンスを生成します。
func NewDeviceAuthHandler(uc DeviceAuthUsecase) *DeviceAuthHandler {
	return &DeviceAuthHandler{uc: uc}
}

// IssueToken はデバイスキーを検証してアクセストークンを発行します。
//
// エンドポイント: POST /v1/device/token
// Content-Type: application/json
func (h *DeviceAuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "device_id と device_key が必要です"})
		return
	}

	token, err := h.uc.IssueToken(req.DeviceID, req.DeviceKey)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDeviceKey):
			slog.Warn("デバイス認証に失敗", "device_id", req.DeviceID, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "認証に失敗しました"})
		case errors.Is(err, usecase.ErrNotConfigured):
			slog.Error("デバイスキーが未設定", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "サーバー設定エラー"})
		default:
			slog.Error("トークン発行に失敗", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "トークンの発行に失敗しました"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
