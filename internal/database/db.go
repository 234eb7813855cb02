// Package database provides the read-only connection to the dictionary file.
package database

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/at-ishikawa/wordlens/internal/config"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Open opens the dictionary SQLite file in read-only mode and verifies that
// it can be queried. The returned handle is safe for concurrent readers.
func Open(ctx context.Context, cfg config.DictionaryConfig) (*sqlx.DB, error) {
	info, err := os.Stat(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("os.Stat(%s) > %w", cfg.Path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("dictionary path %s is a directory", cfg.Path)
	}

	db, err := sqlx.Open(DriverName, readOnlyDSN(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.PingContext() > %w", err)
	}
	return db, nil
}

func readOnlyDSN(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	u := url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(abs),
		RawQuery: "mode=ro&_pragma=query_only(1)",
	}
	return u.String()
}
