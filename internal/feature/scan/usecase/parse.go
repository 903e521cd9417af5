package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"book_scanner/internal/feature/scan/domain/entity"
)

const (
	// fictionPrefix はフィクション請求記号の先頭トークンです。
	fictionPrefix = "FIC"
	// authorHintLength は請求記号から切り出す著者ヒントの文字数です。
	authorHintLength = 3
	// deweyDotWindow はデューイ十進分類の"."を探す先頭からの文字数です。
	deweyDotWindow = 10
)

// SplitLines は認識テキストのブロックをトリム済みの非空行に分割します。
func SplitLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

// ParseHint は認識テキストの行列から請求記号・タイトル・著者のヒントを推定します。
//
// 請求記号は行ごとに判定し、後の行のマッチが前の行のマッチを上書きします
// （参照実装の既知の癖であり、ここでは意図的にそのまま保持）:
//   - フィクション: "FIC"で始まり2トークン以上 → 請求記号=行全体、
//     著者ヒント=第2トークンの先頭3文字
//   - デューイ十進: 先頭が数字かつ先頭10文字以内に"." → 請求記号=行全体
//
// タイトルヒントは請求記号の判定と独立に、最長の行（同長なら最初の行）です。
// 入力が空の場合はすべて未設定のHintを返します。
func ParseHint(lines []string) entity.Hint {
	var hint entity.Hint

	for _, line := range lines {
		tokens := strings.Fields(line)
		switch {
		case strings.HasPrefix(line, fictionPrefix) && len(tokens) >= 2:
			hint.CallNumber = line
			hint.AuthorHint = firstRunes(tokens[1], authorHintLength)
		case isDeweyLine(line):
			hint.CallNumber = line
		}
	}

	for _, line := range lines {
		if len(line) > len(hint.TitleHint) {
			hint.TitleHint = line
		}
	}

	return hint
}

// isDeweyLine は行がデューイ十進分類の請求記号に見えるかを判定します。
func isDeweyLine(line string) bool {
	first, _ := utf8.DecodeRuneInString(line)
	if !unicode.IsDigit(first) {
		return false
	}
	head := line
	if len(head) > deweyDotWindow {
		head = head[:deweyDotWindow]
	}
	return strings.Contains(head, ".")
}

// firstRunes はsの先頭n文字を返します。
func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
