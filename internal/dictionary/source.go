// Package dictionary resolves the layout of a tabular dictionary and ranks
// entries against a query.
package dictionary

import "context"

// Entry is a read-only projection of one dictionary row.
type Entry struct {
	Headword    string `json:"word"`
	Translation string `json:"translation"`
}

// Field selects which of the two schema columns a search runs against.
type Field int

const (
	FieldHeadword Field = iota
	FieldTranslation
)

func (f Field) String() string {
	if f == FieldTranslation {
		return "translation"
	}
	return "headword"
}

// Source is a tabular store the dictionary can be read from.
//
// Search returns rows whose lowercased field value contains text, ordered by
// match tier (equal, prefix, substring) and then by the length of the field
// value, truncated to limit. text is already normalized.
type Source interface {
	Tables(ctx context.Context) ([]string, error)
	CountRows(ctx context.Context, table string) (int64, error)
	Columns(ctx context.Context, table string) ([]string, error)
	Search(ctx context.Context, schema Schema, field Field, text string, limit int) ([]Entry, error)
}
