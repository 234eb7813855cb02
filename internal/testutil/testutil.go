// Package testutil provides shared test helpers for creating config files and dictionary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// Table describes a fixture table. Rows are inserted in order; every row must
// have one value per column.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// CreateDictionaryDB writes a SQLite file with the given tables into dir and
// returns its path.
func CreateDictionaryDB(t *testing.T, dir string, tables ...Table) string {
	t.Helper()

	path := filepath.Join(dir, "dictionary.db")
	db, err := sqlx.Open("sqlite", path)
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	for _, table := range tables {
		columns := make([]string, 0, len(table.Columns))
		for _, c := range table.Columns {
			columns = append(columns, fmt.Sprintf("%q TEXT", c))
		}
		_, err := db.Exec(fmt.Sprintf("CREATE TABLE %q (%s)", table.Name, strings.Join(columns, ", ")))
		require.NoError(t, err)

		if len(table.Rows) == 0 {
			continue
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(table.Columns)), ", ")
		tx, err := db.Beginx()
		require.NoError(t, err)
		stmt, err := tx.Preparex(fmt.Sprintf("INSERT INTO %q VALUES (%s)", table.Name, placeholders))
		require.NoError(t, err)
		for _, row := range table.Rows {
			_, err := stmt.Exec(row...)
			require.NoError(t, err)
		}
		require.NoError(t, stmt.Close())
		require.NoError(t, tx.Commit())
	}
	return path
}

// ECDICTTable returns a small table shaped like the ECDICT stardict table.
func ECDICTTable(rows ...[2]string) Table {
	table := Table{
		Name:    "stardict",
		Columns: []string{"id", "word", "sw", "phonetic", "definition", "translation"},
	}
	for i, r := range rows {
		table.Rows = append(table.Rows, []any{fmt.Sprint(i + 1), r[0], strings.ToLower(r[0]), "", "", r[1]})
	}
	return table
}

// SetupTestConfig writes a config file pointing at the given dictionary path
// and returns the path to the config file.
func SetupTestConfig(t *testing.T, tmpDir, dictionaryPath string, extra string) string {
	t.Helper()

	configContent := fmt.Sprintf(`dictionary:
  path: %s
  auto_download: false
log:
  level: debug
%s`, dictionaryPath, extra)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
