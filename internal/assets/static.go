package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
)

//go:embed static
var staticFiles embed.FS

// StaticFS returns the web page files. A readable directory overrides the
// embedded copy; anything else falls back to it.
func StaticFS(directory string) (http.FileSystem, error) {
	if directory != "" {
		info, err := os.Stat(directory)
		if err == nil && info.IsDir() {
			return http.Dir(directory), nil
		}
		slog.Default().Warn("static directory is not usable, serving the embedded page",
			slog.String("directory", directory),
			slog.Any("error", err),
		)
	}

	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("fs.Sub > %w", err)
	}
	return http.FS(sub), nil
}
