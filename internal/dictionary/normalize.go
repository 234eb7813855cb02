package dictionary

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	tierExact = iota + 1
	tierPrefix
	tierSubstring
	// never produced for rows that passed the substring filter
	tierOther
)

// Normalize trims and lowercases a raw query.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// FoldWidth applies NFKC to text. Full-width Latin letters, which CJK input
// methods often produce, become ASCII, and CJK compatibility ideographs map to
// their unified forms.
func FoldWidth(text string) string {
	return norm.NFKC.String(text)
}

// IsChinese reports whether text contains a CJK Unified Ideograph.
func IsChinese(text string) bool {
	for _, r := range text {
		if r >= '\u4e00' && r <= '\u9fff' {
			return true
		}
	}
	return false
}

func matchTier(value, text string) int {
	switch {
	case value == text:
		return tierExact
	case strings.HasPrefix(value, text):
		return tierPrefix
	case strings.Contains(value, text):
		return tierSubstring
	default:
		return tierOther
	}
}

// escapeLike escapes LIKE wildcards so the text matches literally with ESCAPE '\'.
func escapeLike(text string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(text)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
