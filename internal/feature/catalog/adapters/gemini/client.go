// Package gemini はGoogle Gemini APIを使用した書籍紹介文クライアントを提供します。
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"book_scanner/internal/feature/catalog/usecase"
	"book_scanner/internal/shared/ratelimiter"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// GeminiDescriber はGoogle Gemini APIを使用して書籍の紹介文を生成します。
type GeminiDescriber struct {
	client  *genai.Client
	model   string
	limiter ratelimiter.RateLimiterInterface
}

// GeminiDescriberがBookDescriberを実装していることをコンパイル時に検証します。
var _ usecase.BookDescriber = (*GeminiDescriber)(nil)

// NewGeminiDescriber はADCを使用してGeminiDescriberの新しいインスタンスを生成します。
// 環境変数 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION が必要です。
// limiterはnil可で、指定した場合はAPI呼び出しの頻度を制限します。
func NewGeminiDescriber(ctx context.Context, limiter ratelimiter.RateLimiterInterface) (*GeminiDescriber, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiDescriber{client: client, model: DefaultModel, limiter: limiter}, nil
}

// Describe はプロンプトを使用して紹介文を生成します。
func (g *GeminiDescriber) Describe(ctx context.Context, prompt string) (string, error) {
	if g.limiter != nil {
		g.limiter.WaitIfNeeded()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
