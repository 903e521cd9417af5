package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCatalog はhttptestサーバーを起動し、それを指すクライアントを返します。
func newTestCatalog(t *testing.T, handler http.HandlerFunc) *OpenLibraryCatalog {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := Config{BaseURL: srv.URL, Timeout: 2 * time.Second}
	return NewOpenLibraryCatalog(cfg, srv.Client())
}

func TestOpenLibraryCatalog_Search(t *testing.T) {
	catalog := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "The Hobbit", q.Get("title"))
		assert.Equal(t, "TOL", q.Get("author"))
		assert.Equal(t, "1", q.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"numFound": 2,
			"docs": [
				{
					"title": "The Hobbit",
					"author_name": ["J.R.R. Tolkien", "Christopher Tolkien"],
					"first_publish_year": 1937,
					"isbn": ["9780261103283", "0261103288"]
				}
			]
		}`))
	})

	book, err := catalog.Search(context.Background(), "The Hobbit", "TOL")

	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, "The Hobbit", book.Title)
	assert.Equal(t, "J.R.R. Tolkien", book.Author)
	assert.Equal(t, 1937, book.FirstPublishYear)
	assert.Equal(t, "9780261103283", book.ISBN)
}

func TestOpenLibraryCatalog_Search_OmitsEmptyHints(t *testing.T) {
	catalog := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("author"), "empty author hint should not be sent")
		assert.Equal(t, "The Hobbit", q.Get("title"))

		_, _ = w.Write([]byte(`{"numFound": 0, "docs": []}`))
	})

	book, err := catalog.Search(context.Background(), "The Hobbit", "")

	require.NoError(t, err)
	assert.Nil(t, book, "no docs means no match, not an error")
}

func TestOpenLibraryCatalog_Search_MissingOptionalFields(t *testing.T) {
	catalog := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"numFound": 1, "docs": [{"title": "Anonymous Work"}]}`))
	})

	book, err := catalog.Search(context.Background(), "Anonymous Work", "")

	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, "Anonymous Work", book.Title)
	assert.Empty(t, book.Author)
	assert.Zero(t, book.FirstPublishYear)
	assert.Empty(t, book.ISBN)
}

func TestOpenLibraryCatalog_Search_HTTPError(t *testing.T) {
	catalog := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	book, err := catalog.Search(context.Background(), "The Hobbit", "")

	assert.Error(t, err)
	assert.Nil(t, book)
	assert.Contains(t, err.Error(), "openlibrary http 500")
}

func TestOpenLibraryCatalog_Search_MalformedBody(t *testing.T) {
	catalog := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"docs": [`))
	})

	book, err := catalog.Search(context.Background(), "The Hobbit", "")

	assert.Error(t, err)
	assert.Nil(t, book)
}
