package cells

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/tsawler/transcripta/model"
)

// Normalize canonicalizes a raw cell value into a trimmed,
// whitespace-collapsed string. Nil becomes "". Values implementing
// [model.TextCell] contribute their Text(); strings are used as-is;
// anything else is stringified. Wide-form characters (full-width
// spaces, full-width ASCII common in CJK transcripts) are folded to
// their narrow equivalents before whitespace collapsing, so "１１１"
// and "111" normalize identically.
//
// Normalize is pure and idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(cell model.RawCell) string {
	if cell == nil {
		return ""
	}

	var text string
	switch v := cell.(type) {
	case model.TextCell:
		text = v.Text()
	case string:
		text = v
	case []byte:
		text = string(v)
	case fmt.Stringer:
		text = v.String()
	default:
		text = fmt.Sprintf("%v", v)
	}

	return CollapseSpace(text)
}

// CollapseSpace folds wide-form runes to narrow, replaces every run of
// Unicode whitespace (including U+3000 and newlines) with a single
// ASCII space, and trims the ends.
func CollapseSpace(s string) string {
	s = width.Fold.String(s)

	var sb strings.Builder
	sb.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		inSpace = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// Squash removes all whitespace entirely. Header keyword matching uses
// squashed, lowercased forms so "學 分" matches the "學分" keyword.
func Squash(s string) string {
	folded := width.Fold.String(s)
	var sb strings.Builder
	sb.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// NormalizeRow normalizes every cell of a raw row.
func NormalizeRow(row []model.RawCell) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = Normalize(cell)
	}
	return out
}
