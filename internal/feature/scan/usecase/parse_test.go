package usecase_test

import (
	"reflect"
	"testing"

	"book_scanner/internal/feature/scan/domain/entity"
	"book_scanner/internal/feature/scan/usecase"
)

func TestParseHint(t *testing.T) {
	testCases := []struct {
		name     string
		lines    []string
		expected entity.Hint
	}{
		{
			name:     "empty: no lines yields an unset hint",
			lines:    nil,
			expected: entity.Hint{},
		},
		{
			name:  "fiction: call number line sets author hint from second token",
			lines: []string{"FIC SMITH", "short"},
			expected: entity.Hint{
				CallNumber: "FIC SMITH",
				AuthorHint: "SMI",
				TitleHint:  "FIC SMITH",
			},
		},
		{
			name:  "dewey: digit start with early dot sets call number only",
			lines: []string{"123.45 Dewey Line", "A Much Longer Title Line Here"},
			expected: entity.Hint{
				CallNumber: "123.45 Dewey Line",
				TitleHint:  "A Much Longer Title Line Here",
			},
		},
		{
			name:  "last match wins: later fiction line overwrites earlier one",
			lines: []string{"FIC AAA", "FIC BBB CCC"},
			expected: entity.Hint{
				CallNumber: "FIC BBB CCC",
				AuthorHint: "BBB",
				TitleHint:  "FIC BBB CCC",
			},
		},
		{
			name:  "fiction without second token does not match",
			lines: []string{"FIC", "THE LORD OF THE RINGS"},
			expected: entity.Hint{
				TitleHint: "THE LORD OF THE RINGS",
			},
		},
		{
			name:  "dewey: dot after the first ten characters does not match",
			lines: []string{"1234567890123.4"},
			expected: entity.Hint{
				TitleHint: "1234567890123.4",
			},
		},
		{
			name:  "dewey: last match wins over earlier dewey line",
			lines: []string{"511.3 LOGIC", "823.912 TOLKIEN"},
			expected: entity.Hint{
				CallNumber: "823.912 TOLKIEN",
				TitleHint:  "823.912 TOLKIEN",
			},
		},
		{
			name:  "fiction author hint keeps short tokens whole",
			lines: []string{"FIC NG"},
			expected: entity.Hint{
				CallNumber: "FIC NG",
				AuthorHint: "NG",
				TitleHint:  "FIC NG",
			},
		},
		{
			name:  "title: tie is broken by first occurrence",
			lines: []string{"AAAA", "BBBB"},
			expected: entity.Hint{
				TitleHint: "AAAA",
			},
		},
		{
			name:  "title is computed independently of call number detection",
			lines: []string{"THE RETURN OF THE KING", "FIC TOLKIEN"},
			expected: entity.Hint{
				CallNumber: "FIC TOLKIEN",
				AuthorHint: "TOL",
				TitleHint:  "THE RETURN OF THE KING",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hint := usecase.ParseHint(tc.lines)
			if hint != tc.expected {
				t.Errorf("hint mismatch: got %+v, want %+v", hint, tc.expected)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	testCases := []struct {
		name     string
		block    string
		expected []string
	}{
		{
			name:     "blank lines and surrounding whitespace are discarded",
			block:    "  FIC TOLKIEN  \n\n   \nTHE HOBBIT\r\n",
			expected: []string{"FIC TOLKIEN", "THE HOBBIT"},
		},
		{
			name:     "empty block yields no lines",
			block:    "",
			expected: nil,
		},
		{
			name:     "single line without newline",
			block:    "823.912",
			expected: []string{"823.912"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines := usecase.SplitLines(tc.block)
			if !reflect.DeepEqual(lines, tc.expected) {
				t.Errorf("lines mismatch: got %v, want %v", lines, tc.expected)
			}
		})
	}
}
