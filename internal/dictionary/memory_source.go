package dictionary

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"
)

// MemoryTable is an in-memory table. Each row holds one value per column;
// rows too short to hold the searched columns are skipped.
type MemoryTable struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// MemorySource scans and ranks in-memory tables. It follows the same
// contract as SQLSource and suits fixtures and small word lists.
type MemorySource struct {
	tables []MemoryTable
}

func NewMemorySource(tables ...MemoryTable) *MemorySource {
	return &MemorySource{tables: tables}
}

func (s *MemorySource) table(name string) (MemoryTable, error) {
	for _, t := range s.tables {
		if t.Name == name {
			return t, nil
		}
	}
	return MemoryTable{}, fmt.Errorf("no such table: %s", name)
}

func (s *MemorySource) Tables(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(s.tables))
	for _, t := range s.tables {
		names = append(names, t.Name)
	}
	return names, nil
}

func (s *MemorySource) CountRows(_ context.Context, table string) (int64, error) {
	t, err := s.table(table)
	if err != nil {
		return 0, err
	}
	return int64(len(t.Rows)), nil
}

func (s *MemorySource) Columns(_ context.Context, table string) ([]string, error) {
	t, err := s.table(table)
	if err != nil {
		return nil, err
	}
	return slices.Clone(t.Columns), nil
}

func (s *MemorySource) Search(ctx context.Context, schema Schema, field Field, text string, limit int) ([]Entry, error) {
	t, err := s.table(schema.Table)
	if err != nil {
		return nil, err
	}
	headwordIndex := slices.Index(t.Columns, schema.HeadwordColumn)
	translationIndex := slices.Index(t.Columns, schema.TranslationColumn)
	if headwordIndex < 0 || translationIndex < 0 {
		return nil, fmt.Errorf("table %s has no column %q or %q", t.Name, schema.HeadwordColumn, schema.TranslationColumn)
	}
	searchIndex := headwordIndex
	if field == FieldTranslation {
		searchIndex = translationIndex
	}

	type candidate struct {
		entry  Entry
		tier   int
		length int
	}
	minLength := max(headwordIndex, translationIndex) + 1
	var candidates []candidate
	for _, row := range t.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// short rows lack a column the schema needs
		if len(row) < minLength {
			continue
		}
		value := strings.ToLower(row[searchIndex])
		if !strings.Contains(value, text) {
			continue
		}
		candidates = append(candidates, candidate{
			entry: Entry{
				Headword:    row[headwordIndex],
				Translation: row[translationIndex],
			},
			tier:   matchTier(value, text),
			length: utf8.RuneCountInString(row[searchIndex]),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].tier != candidates[j].tier {
			return candidates[i].tier < candidates[j].tier
		}
		return candidates[i].length < candidates[j].length
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	entries := make([]Entry, 0, len(candidates))
	for _, c := range candidates {
		entries = append(entries, c.entry)
	}
	return entries, nil
}
