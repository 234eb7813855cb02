package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "Book", want: "book"},
		{raw: "  HeLLo\t\n", want: "hello"},
		{raw: "ｂｏｏｋ", want: "ｂｏｏｋ"},
		{raw: "　书　", want: "书"},
		{raw: "", want: ""},
		{raw: " \t ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestFoldWidth(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "ｂｏｏｋ", want: "book"},
		{text: "ＢＯＯＫ", want: "BOOK"},
		{text: "\uf900", want: "\u8c48"},
		{text: "书", want: "书"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldWidth(tt.text))
		})
	}
}

func TestIsChinese(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{text: "书", want: true},
		{text: "book 书", want: true},
		{text: "book", want: false},
		{text: "café", want: false},
		{text: "ほん", want: false},
		{text: "\uf900", want: false},
		{text: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IsChinese(tt.text))
		})
	}
}

func TestMatchTier(t *testing.T) {
	assert.Equal(t, tierExact, matchTier("book", "book"))
	assert.Equal(t, tierPrefix, matchTier("booking", "book"))
	assert.Equal(t, tierSubstring, matchTier("ebook", "book"))
	assert.Equal(t, tierOther, matchTier("apple", "book"))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"stardict"`, quoteIdent("stardict"))
	assert.Equal(t, `"a""b"`, quoteIdent(`a"b`))
}
