package usecase_test

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"book_scanner/internal/feature/deviceauth/usecase"
)

// mockTokenGenerator はTokenGeneratorインターフェースのモック実装です。
type mockTokenGenerator struct {
	GenerateTokenFunc  func(deviceID string) (string, error)
	GenerateTokenCalls int
}

func (m *mockTokenGenerator) GenerateToken(deviceID string) (string, error) {
	m.GenerateTokenCalls++
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(deviceID)
	}
	return "", errors.New("GenerateTokenFunc is not implemented")
}

func hashKey(t *testing.T, key string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash device key: %v", err)
	}
	return string(hash)
}

func TestDeviceAuthUsecase_IssueToken(t *testing.T) {
	validHash := hashKey(t, "correct-key")
	errSign := errors.New("signing failure")

	testCases := []struct {
		name          string
		cfg           usecase.Config
		deviceID      string
		deviceKey     string
		mockFunc      func(deviceID string) (string, error)
		expectedToken string
		expectedErr   error
		expectedMsg   string
		expectedCalls int
	}{
		{
			name:      "success: valid key issues a token",
			cfg:       usecase.Config{DeviceKeyHash: validHash},
			deviceID:  "scanner-01",
			deviceKey: "correct-key",
			mockFunc: func(deviceID string) (string, error) {
				if deviceID != "scanner-01" {
					return "", errors.New("unexpected device id")
				}
				return "signed-token", nil
			},
			expectedToken: "signed-token",
			expectedCalls: 1,
		},
		{
			name:        "error: wrong key is rejected",
			cfg:         usecase.Config{DeviceKeyHash: validHash},
			deviceID:    "scanner-01",
			deviceKey:   "wrong-key",
			expectedErr: usecase.ErrInvalidDeviceKey,
		},
		{
			name:        "error: hash not configured",
			cfg:         usecase.Config{},
			deviceID:    "scanner-01",
			deviceKey:   "correct-key",
			expectedErr: usecase.ErrNotConfigured,
		},
		{
			name:        "error: blank device id",
			cfg:         usecase.Config{DeviceKeyHash: validHash},
			deviceID:    "   ",
			deviceKey:   "correct-key",
			expectedMsg: "device id is required",
		},
		{
			name:      "error: generator failure is wrapped",
			cfg:       usecase.Config{DeviceKeyHash: validHash},
			deviceID:  "scanner-01",
			deviceKey: "correct-key",
			mockFunc: func(deviceID string) (string, error) {
				return "", errSign
			},
			expectedErr:   errSign,
			expectedCalls: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &mockTokenGenerator{GenerateTokenFunc: tc.mockFunc}
			uc := usecase.NewDeviceAuthUsecase(tc.cfg, gen)

			token, err := uc.IssueToken(tc.deviceID, tc.deviceKey)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if tc.expectedMsg != "" {
				if err == nil || !strings.Contains(err.Error(), tc.expectedMsg) {
					t.Fatalf("expected error containing %q, got %v", tc.expectedMsg, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if token != tc.expectedToken {
					t.Errorf("token mismatch: got %q, want %q", token, tc.expectedToken)
				}
			}

			if gen.GenerateTokenCalls != tc.expectedCalls {
				t.Errorf("generator calls mismatch: got %d, want %d", gen.GenerateTokenCalls, tc.expectedCalls)
			}
		})
	}
}
