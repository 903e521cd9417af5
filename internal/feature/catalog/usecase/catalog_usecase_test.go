package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"book_scanner/internal/feature/catalog/domain/entity"
	"book_scanner/internal/feature/catalog/usecase"
)

// ErrAPI はモックと期待値の間で共有されるセンチネルエラーです。
var ErrAPI = errors.New("api error")

// mockCatalogRepository はCatalogRepositoryインターフェースのモック実装です。
type mockCatalogRepository struct {
	SearchFunc  func(ctx context.Context, title, author string) (*entity.Book, error)
	SearchCalls int
}

func (m *mockCatalogRepository) Search(ctx context.Context, title, author string) (*entity.Book, error) {
	m.SearchCalls++
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, title, author)
	}
	return nil, errors.New("SearchFunc is not implemented")
}

// mockDescriber はBookDescriberインターフェースのモック実装です。
type mockDescriber struct {
	DescribeFunc  func(ctx context.Context, prompt string) (string, error)
	DescribeCalls int
	LastPrompt    string
}

func (m *mockDescriber) Describe(ctx context.Context, prompt string) (string, error) {
	m.DescribeCalls++
	m.LastPrompt = prompt
	if m.DescribeFunc != nil {
		return m.DescribeFunc(ctx, prompt)
	}
	return "", errors.New("DescribeFunc is not implemented")
}

func TestCatalogUsecase_Lookup(t *testing.T) {
	ctx := context.Background()
	hobbit := &entity.Book{Title: "The Hobbit", Author: "J.R.R. Tolkien", FirstPublishYear: 1937}

	testCases := []struct {
		name          string
		titleHint     string
		authorHint    string
		mockFunc      func(ctx context.Context, title, author string) (*entity.Book, error)
		expectedBook  *entity.Book
		expectedOK    bool
		expectedCalls int
	}{
		{
			name:       "success: match found",
			titleHint:  "The Hobbit",
			authorHint: "TOL",
			mockFunc: func(ctx context.Context, title, author string) (*entity.Book, error) {
				return hobbit, nil
			},
			expectedBook:  hobbit,
			expectedOK:    true,
			expectedCalls: 1,
		},
		{
			name:          "skip: both hints empty sends no request",
			titleHint:     "   ",
			authorHint:    "",
			expectedBook:  nil,
			expectedOK:    false,
			expectedCalls: 0,
		},
		{
			name:      "not found: catalog reports no match",
			titleHint: "Unknown Book",
			mockFunc: func(ctx context.Context, title, author string) (*entity.Book, error) {
				return nil, nil
			},
			expectedBook:  nil,
			expectedOK:    false,
			expectedCalls: 1,
		},
		{
			name:      "not found: network failure never propagates",
			titleHint: "The Hobbit",
			mockFunc: func(ctx context.Context, title, author string) (*entity.Book, error) {
				return nil, ErrAPI
			},
			expectedBook:  nil,
			expectedOK:    false,
			expectedCalls: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockCatalogRepository{SearchFunc: tc.mockFunc}
			uc := usecase.NewCatalogUsecase(repo, nil)

			book, ok := uc.Lookup(ctx, tc.titleHint, tc.authorHint)

			if ok != tc.expectedOK {
				t.Errorf("ok mismatch: got %v, want %v", ok, tc.expectedOK)
			}
			if book != tc.expectedBook {
				t.Errorf("book mismatch: got %+v, want %+v", book, tc.expectedBook)
			}
			if repo.SearchCalls != tc.expectedCalls {
				t.Errorf("search calls mismatch: got %d, want %d", repo.SearchCalls, tc.expectedCalls)
			}
		})
	}
}

func TestCatalogUsecase_Lookup_TrimsHints(t *testing.T) {
	repo := &mockCatalogRepository{
		SearchFunc: func(ctx context.Context, title, author string) (*entity.Book, error) {
			if title != "The Hobbit" || author != "TOL" {
				t.Errorf("hints not trimmed: got (%q, %q)", title, author)
			}
			return &entity.Book{Title: "The Hobbit"}, nil
		},
	}
	uc := usecase.NewCatalogUsecase(repo, nil)

	if _, ok := uc.Lookup(context.Background(), "  The Hobbit  ", " TOL "); !ok {
		t.Fatal("expected ok=true")
	}
}

func TestCatalogUsecase_Describe(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name            string
		title           string
		author          string
		describer       *mockDescriber
		expectedSummary string
		expectedErr     error
		expectedErrMsg  string
	}{
		{
			name:   "success: summary generated with title and author in prompt",
			title:  "The Hobbit",
			author: "J.R.R. Tolkien",
			describer: &mockDescriber{
				DescribeFunc: func(ctx context.Context, prompt string) (string, error) {
					return "A hobbit goes on an adventure.", nil
				},
			},
			expectedSummary: "A hobbit goes on an adventure.",
		},
		{
			name:        "error: describer not configured",
			title:       "The Hobbit",
			describer:   nil,
			expectedErr: usecase.ErrDescriberUnavailable,
		},
		{
			name:           "error: empty title",
			title:          "   ",
			describer:      &mockDescriber{},
			expectedErrMsg: "title is required",
		},
		{
			name:  "error: api failure is wrapped",
			title: "The Hobbit",
			describer: &mockDescriber{
				DescribeFunc: func(ctx context.Context, prompt string) (string, error) {
					return "", ErrAPI
				},
			},
			expectedErr: ErrAPI,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var describer usecase.BookDescriber
			if tc.describer != nil {
				describer = tc.describer
			}
			uc := usecase.NewCatalogUsecase(&mockCatalogRepository{}, describer)

			summary, err := uc.Describe(ctx, tc.title, tc.author)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if tc.expectedErrMsg != "" {
				if err == nil || !strings.Contains(err.Error(), tc.expectedErrMsg) {
					t.Fatalf("expected error containing %q, got %v", tc.expectedErrMsg, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if summary != tc.expectedSummary {
				t.Errorf("summary mismatch: got %q, want %q", summary, tc.expectedSummary)
			}
		})
	}
}

func TestCatalogUsecase_Describe_PromptContents(t *testing.T) {
	describer := &mockDescriber{
		DescribeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "ok", nil
		},
	}
	uc := usecase.NewCatalogUsecase(&mockCatalogRepository{}, describer)

	if _, err := uc.Describe(context.Background(), "The Hobbit", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(describer.LastPrompt, `"The Hobbit"`) {
		t.Errorf("prompt should contain the title, got %q", describer.LastPrompt)
	}
	if !strings.Contains(describer.LastPrompt, "an unknown author") {
		t.Errorf("prompt should fall back for a missing author, got %q", describer.LastPrompt)
	}
}
