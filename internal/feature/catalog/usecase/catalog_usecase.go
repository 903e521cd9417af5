// Package usecase はcatalogフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"book_scanner/internal/feature/catalog/domain/entity"
)

const (
	// DescribePromptTemplate は書籍紹介文のプロンプトテンプレートです。
	DescribePromptTemplate = "Give a two-sentence description of the book %q by %s. Reply with the description only."
)

// ErrDescriberUnavailable は紹介文ジェネレータが未設定のときに返されます。
var ErrDescriberUnavailable = errors.New("book describer is not configured")

// CatalogRepository は外部カタログの検索を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CatalogRepository interface {
	// Search はヒントに一致する最良の書誌レコードを最大1件返します。
	// 一致がない場合は (nil, nil) を返します。
	Search(ctx context.Context, title, author string) (*entity.Book, error)
}

// BookDescriber は解決済みの書籍の紹介文を生成します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type BookDescriber interface {
	// Describe はプロンプトから紹介文を生成します。
	Describe(ctx context.Context, prompt string) (string, error)
}

// catalogUsecase は書誌解決・紹介文生成のビジネスロジックを提供します。
type catalogUsecase struct {
	repo      CatalogRepository
	describer BookDescriber
}

// NewCatalogUsecase はcatalogUsecaseの新しいインスタンスを生成します。
// describerはnil可で、その場合Describeは ErrDescriberUnavailable を返します。
func NewCatalogUsecase(repo CatalogRepository, describer BookDescriber) *catalogUsecase {
	return &catalogUsecase{repo: repo, describer: describer}
}

// Lookup はタイトル・著者のヒントから書誌レコードを解決します。
// 両方のヒントが空の場合はリクエストを送らずに ok=false を返します。
// 外部カタログの障害や不正なレスポンスも ok=false に変換し、決してエラーを伝播しません。
func (u *catalogUsecase) Lookup(ctx context.Context, titleHint, authorHint string) (*entity.Book, bool) {
	titleHint = strings.TrimSpace(titleHint)
	authorHint = strings.TrimSpace(authorHint)
	if titleHint == "" && authorHint == "" {
		return nil, false
	}

	book, err := u.repo.Search(ctx, titleHint, authorHint)
	if err != nil {
		slog.Warn("catalog lookup failed", "title", titleHint, "author", authorHint, "error", err)
		return nil, false
	}
	if book == nil {
		slog.Info("no books found", "title", titleHint, "author", authorHint)
		return nil, false
	}

	return book, true
}

// Describe はタイトル・著者から書籍の紹介文を生成します。
func (u *catalogUsecase) Describe(ctx context.Context, title, author string) (string, error) {
	if u.describer == nil {
		return "", ErrDescriberUnavailable
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("title is required")
	}
	by := strings.TrimSpace(author)
	if by == "" {
		by = "an unknown author"
	}

	prompt := fmt.Sprintf(DescribePromptTemplate, title, by)
	summary, err := u.describer.Describe(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("book describer failed for %q: %w", title, err)
	}
	return summary, nil
}
