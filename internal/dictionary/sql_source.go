package dictionary

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// SQLSource reads a SQLite dictionary through a shared read-only handle.
//
// SQLite's lower() only folds ASCII, so non-ASCII letters in stored values
// match case-sensitively. Chinese text has no case and is unaffected.
type SQLSource struct {
	db *sqlx.DB
}

func NewSQLSource(db *sqlx.DB) *SQLSource {
	return &SQLSource{db: db}
}

func (s *SQLSource) Tables(ctx context.Context) ([]string, error) {
	var tables []string
	if err := s.db.SelectContext(ctx, &tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite\_%' ESCAPE '\'`,
	); err != nil {
		return nil, fmt.Errorf("db.SelectContext(sqlite_master) > %w", err)
	}
	return tables, nil
}

func (s *SQLSource) CountRows(ctx context.Context, table string) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").From(quoteIdent(table)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("squirrel.ToSql > %w", err)
	}

	var count int64
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("db.GetContext(count %s) > %w", table, err)
	}
	return count, nil
}

func (s *SQLSource) Columns(ctx context.Context, table string) ([]string, error) {
	var columns []string
	if err := s.db.SelectContext(ctx, &columns,
		`SELECT name FROM pragma_table_info(?) ORDER BY cid`, table,
	); err != nil {
		return nil, fmt.Errorf("db.SelectContext(pragma_table_info %s) > %w", table, err)
	}
	return columns, nil
}

type entryRow struct {
	Headword    sql.NullString `db:"headword"`
	Translation sql.NullString `db:"translation"`
}

func (s *SQLSource) Search(ctx context.Context, schema Schema, field Field, text string, limit int) ([]Entry, error) {
	query, args, err := buildSearchQuery(schema, field, text, limit)
	if err != nil {
		return nil, fmt.Errorf("buildSearchQuery > %w", err)
	}

	var rows []entryRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(search %s) > %w", schema.Table, err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			Headword:    row.Headword.String,
			Translation: row.Translation.String,
		})
	}
	return entries, nil
}

func buildSearchQuery(schema Schema, field Field, text string, limit int) (string, []any, error) {
	column := quoteIdent(schema.column(field))
	lowered := "lower(" + column + ")"
	escaped := escapeLike(text)
	contains := "%" + escaped + "%"

	return sq.Select(
		quoteIdent(schema.HeadwordColumn)+" AS headword",
		quoteIdent(schema.TranslationColumn)+" AS translation",
	).
		From(quoteIdent(schema.Table)).
		Where(lowered+` LIKE ? ESCAPE '\'`, contains).
		OrderByClause(
			"CASE"+
				" WHEN "+lowered+" = ? THEN 1"+
				" WHEN "+lowered+` LIKE ? ESCAPE '\' THEN 2`+
				" WHEN "+lowered+` LIKE ? ESCAPE '\' THEN 3`+
				" ELSE 4 END, length("+column+")",
			text, escaped+"%", contains,
		).
		Limit(uint64(limit)).
		ToSql()
}
