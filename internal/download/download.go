// Package download provisions the dictionary database from a zip archive.
package download

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/wordlens/internal/config"
)

// ErrNoDatabase is returned when the archive holds no .db file.
var ErrNoDatabase = errors.New("archive contains no .db file")

// Ensure downloads and extracts the dictionary when cfg.Path does not exist.
// It reports whether a download happened.
func Ensure(ctx context.Context, cfg config.DictionaryConfig) (bool, error) {
	if _, err := os.Stat(cfg.Path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("os.Stat(%s) > %w", cfg.Path, err)
	}
	if cfg.ArchiveURL == "" {
		return false, fmt.Errorf("%s does not exist and no archive_url is configured", cfg.Path)
	}
	if err := Download(ctx, cfg); err != nil {
		return false, err
	}
	return true, nil
}

// Download fetches cfg.ArchiveURL and extracts its database to cfg.Path,
// replacing any existing file.
func Download(ctx context.Context, cfg config.DictionaryConfig) error {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	archive, err := os.CreateTemp(dir, "dictionary-*.zip")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	archivePath := archive.Name()
	_ = archive.Close()
	defer func() {
		_ = os.Remove(archivePath)
	}()

	slog.Default().InfoContext(ctx, "downloading dictionary",
		slog.String("url", cfg.ArchiveURL),
		slog.String("path", cfg.Path),
	)
	client := resty.New().SetTimeout(cfg.DownloadTimeout)
	res, err := client.R().
		SetContext(ctx).
		SetOutput(archivePath).
		Get(cfg.ArchiveURL)
	if err != nil {
		return fmt.Errorf("client.R.Get > %w", err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("download %s: status code: %d", cfg.ArchiveURL, res.StatusCode())
	}

	name, err := extractDatabase(archivePath, cfg.Path)
	if err != nil {
		return fmt.Errorf("extractDatabase > %w", err)
	}
	slog.Default().InfoContext(ctx, "dictionary extracted",
		slog.String("entry", name),
		slog.String("path", cfg.Path),
	)
	return nil
}

// extractDatabase copies the first .db entry of the archive to dest and
// returns the entry name.
func extractDatabase(archivePath, dest string) (string, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", fmt.Errorf("zip.OpenReader > %w", err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.FileInfo().IsDir() || !strings.EqualFold(filepath.Ext(file.Name), ".db") {
			continue
		}
		if err := copyEntry(file, dest); err != nil {
			return "", err
		}
		return file.Name, nil
	}
	return "", ErrNoDatabase
}

func copyEntry(file *zip.File, dest string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("file.Open(%s) > %w", file.Name, err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, src); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("io.Copy(%s) > %w", file.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("tmp.Close > %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}
