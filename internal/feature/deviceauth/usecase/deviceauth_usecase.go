// Package usecase はdeviceauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidDeviceKey はデバイスキーが登録済みのものと一致しないときに返されます。
	ErrInvalidDeviceKey = errors.New("invalid device key")
	// ErrNotConfigured はデバイスキーのハッシュがサーバーに設定されていないときに返されます。
	ErrNotConfigured = errors.New("device key hash is not configured")
)

// Config holds the registered scanner device credentials.
type Config struct {
	DeviceKeyHash string // bcrypt hash of the shared device key
}

// LoadConfig loads device auth configuration from environment variables.
func LoadConfig() Config {
	return Config{
		DeviceKeyHash: os.Getenv("DEVICE_KEY_HASH"),
	}
}

// TokenGenerator は署名済みデバイストークンを生成します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TokenGenerator interface {
	// GenerateToken は指定されたデバイスの署名済みトークンを生成します。
	GenerateToken(deviceID string) (string, error)
}

// deviceAuthUsecase はスキャナデバイス認証のビジネスロジックを提供します。
type deviceAuthUsecase struct {
	cfg    Config
	tokens TokenGenerator
}

// NewDeviceAuthUsecase はdeviceAuthUsecaseの新しいインスタンスを生成します。
func NewDeviceAuthUsecase(cfg Config, tokens TokenGenerator) *deviceAuthUsecase {
	return &deviceAuthUsecase{cfg: cfg, tokens: tokens}
}

// IssueToken は共有デバイスキーを検証し、署名済みトークンを発行します。
// キーはbcryptハッシュとの比較で検証するため、平文はサーバーに置きません。
func (u *deviceAuthUsecase) IssueToken(deviceID, deviceKey string) (string, error) {
	if strings.TrimSpace(deviceID) == "" {
		return "", fmt.Errorf("device id is required")
	}
	if u.cfg.DeviceKeyHash == "" {
		return "", ErrNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.cfg.DeviceKeyHash), []byte(deviceKey)); err != nil {
		return "", ErrInvalidDeviceKey
	}

	token, err := u.tokens.GenerateToken(deviceID)
	if err != nil {
		return "", fmt.Errorf("failed to issue device token: %w", err)
	}
	return token, nil
}
