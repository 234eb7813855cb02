package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordlens/internal/assets"
	"github.com/at-ishikawa/wordlens/internal/bootstrap"
	"github.com/at-ishikawa/wordlens/internal/config"
	"github.com/at-ishikawa/wordlens/internal/dictionary"
	"github.com/at-ishikawa/wordlens/internal/examples"
	"github.com/at-ishikawa/wordlens/internal/lookup"
	"github.com/at-ishikawa/wordlens/internal/news"
	"github.com/at-ishikawa/wordlens/internal/server"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "wordlens-server",
		Short:         "Serve dictionary lookups, examples and news over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}
	logger := bootstrap.SetupLogger(cfg.Log, os.Stderr)

	db, schema, err := bootstrap.OpenDictionary(ctx, cfg.Dictionary)
	if err != nil {
		return err
	}
	app.AddShutdownHook(func(context.Context) error {
		return db.Close()
	})
	logger.Info("dictionary ready",
		slog.String("path", cfg.Dictionary.Path),
		slog.String("table", schema.Table),
		slog.String("headword_column", schema.HeadwordColumn),
		slog.String("translation_column", schema.TranslationColumn),
	)

	provider := examples.NewProvider(cfg.Examples)
	// lookup.Service attaches examples itself, so the searcher only ranks
	searcher := dictionary.NewSearcher(dictionary.NewSQLSource(db), schema, nil,
		dictionary.WithWidthFolding(cfg.Dictionary.FoldWidth))
	newsSearcher, closeNews := news.NewSearcherFromConfig(cfg.News)
	app.AddShutdownHook(func(context.Context) error {
		return closeNews()
	})
	if cfg.News.APIKey == "" {
		logger.Warn("NEWS_API_KEY is not set; news requests will likely be rejected")
	}

	service := lookup.NewService(searcher, provider, newsSearcher, lookup.Options{
		ExamplesTimeout: cfg.Examples.Timeout,
		NewsTimeout:     cfg.News.Timeout,
	})

	static, err := assets.StaticFS(cfg.Server.StaticDirectory)
	if err != nil {
		return fmt.Errorf("assets.StaticFS() > %w", err)
	}
	router := server.NewRouter(cfg.Server, server.NewHandler(service, db), static)
	srv := server.New(cfg.Server, router)
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("starting server", slog.String("addr", srv.Addr), slog.Any("endpoints", server.Endpoints))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}
