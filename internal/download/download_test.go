package download

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordlens/internal/config"
)

func zipArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := writer.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

func archiveServer(t *testing.T, status int, body []byte) (*httptest.Server, *int) {
	t.Helper()
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func dictionaryConfig(dir, url string) config.DictionaryConfig {
	return config.DictionaryConfig{
		Path:            filepath.Join(dir, "stardict.db"),
		ArchiveURL:      url,
		DownloadTimeout: 5 * time.Second,
	}
}

func assertOnlyFile(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{name}, names)
}

func TestEnsure(t *testing.T) {
	t.Run("downloads and extracts a missing database", func(t *testing.T) {
		server, requests := archiveServer(t, http.StatusOK, zipArchive(t, map[string]string{
			"README.md":   "readme",
			"stardict.db": "sqlite bytes",
		}))
		dir := t.TempDir()
		cfg := dictionaryConfig(dir, server.URL+"/ecdict.zip")

		downloaded, err := Ensure(context.Background(), cfg)
		require.NoError(t, err)
		assert.True(t, downloaded)
		assert.Equal(t, 1, *requests)

		content, err := os.ReadFile(cfg.Path)
		require.NoError(t, err)
		assert.Equal(t, "sqlite bytes", string(content))
		assertOnlyFile(t, dir, "stardict.db")
	})

	t.Run("existing database is left alone", func(t *testing.T) {
		server, requests := archiveServer(t, http.StatusOK, nil)
		dir := t.TempDir()
		cfg := dictionaryConfig(dir, server.URL)
		require.NoError(t, os.WriteFile(cfg.Path, []byte("existing"), 0o644))

		downloaded, err := Ensure(context.Background(), cfg)
		require.NoError(t, err)
		assert.False(t, downloaded)
		assert.Zero(t, *requests)
	})

	t.Run("no archive url", func(t *testing.T) {
		cfg := dictionaryConfig(t.TempDir(), "")
		_, err := Ensure(context.Background(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no archive_url")
	})
}

func TestDownload_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    []byte
		wantErr string
	}{
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    []byte("missing"),
			wantErr: "status code: 404",
		},
		{
			name:    "not a zip",
			status:  http.StatusOK,
			body:    []byte("<html>"),
			wantErr: "zip.OpenReader",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := archiveServer(t, tt.status, tt.body)
			dir := t.TempDir()

			err := Download(context.Background(), dictionaryConfig(dir, server.URL))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}

	t.Run("archive without a database", func(t *testing.T) {
		server, _ := archiveServer(t, http.StatusOK, zipArchive(t, map[string]string{"stardict.csv": "a,b"}))
		err := Download(context.Background(), dictionaryConfig(t.TempDir(), server.URL))
		assert.ErrorIs(t, err, ErrNoDatabase)
	})
}
