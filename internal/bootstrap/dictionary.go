package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordlens/internal/config"
	"github.com/at-ishikawa/wordlens/internal/database"
	"github.com/at-ishikawa/wordlens/internal/dictionary"
	"github.com/at-ishikawa/wordlens/internal/download"
)

// OpenDictionary downloads the database when allowed and missing, opens it
// and resolves its schema. A database whose schema cannot be resolved is
// closed and reported as an error. The caller closes the returned handle.
func OpenDictionary(ctx context.Context, cfg config.DictionaryConfig) (*sqlx.DB, dictionary.Schema, error) {
	if cfg.AutoDownload {
		downloaded, err := download.Ensure(ctx, cfg)
		if err != nil {
			return nil, dictionary.Schema{}, fmt.Errorf("download.Ensure() > %w", err)
		}
		if downloaded {
			slog.Default().InfoContext(ctx, "dictionary downloaded", slog.String("path", cfg.Path))
		}
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, dictionary.Schema{}, fmt.Errorf("database.Open() > %w", err)
	}
	schema, err := dictionary.NewDetector(cfg.Schema, dictionary.NewSQLSource(db)).Detect(ctx)
	if err != nil {
		_ = db.Close()
		return nil, dictionary.Schema{}, fmt.Errorf("detector.Detect() > %w", err)
	}
	return db, schema, nil
}
