package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"book_scanner/internal/feature/catalog/adapters/openlibrary/dto"
	"book_scanner/internal/feature/catalog/domain/entity"
	"book_scanner/internal/feature/catalog/usecase"
)

// OpenLibraryCatalog はOpen Library検索APIから書誌情報を取得するCatalogRepository実装です。
type OpenLibraryCatalog struct {
	cfg    Config
	client *http.Client
}

// OpenLibraryCatalogがCatalogRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CatalogRepository = (*OpenLibraryCatalog)(nil)

// NewOpenLibraryCatalog は指定された設定とHTTPクライアントでOpenLibraryCatalogの新しいインスタンスを生成します。
func NewOpenLibraryCatalog(cfg Config, client *http.Client) *OpenLibraryCatalog {
	return &OpenLibraryCatalog{cfg: cfg, client: client}
}

// Search はOpen Libraryでタイトル・著者を検索し、最良一致1件を
// domain.Bookとして返します。一致がない場合は (nil, nil) を返します。
func (o *OpenLibraryCatalog) Search(ctx context.Context, title, author string) (*entity.Book, error) {
	q := url.Values{}
	// クエリパラメータを追加（空のヒントは付けない）
	if title != "" {
		q.Set("title", title)
	}
	if author != "" {
		q.Set("author", author)
	}
	q.Set("limit", "1")

	// URLを生成
	u := fmt.Sprintf("%s/search.json?%s", o.cfg.BaseURL, q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	// リクエストを実行
	res, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("openlibrary http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	if len(body.Docs) == 0 {
		return nil, nil
	}

	// ドメインエンティティに変換
	doc := body.Docs[0]
	book := &entity.Book{
		Title:            doc.Title,
		FirstPublishYear: doc.FirstPublishYear,
	}
	if len(doc.AuthorName) > 0 {
		book.Author = doc.AuthorName[0]
	}
	if len(doc.ISBN) > 0 {
		book.ISBN = doc.ISBN[0]
	}
	return book, nil
}
