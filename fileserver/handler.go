package fileserver

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/quichefs/quiche/filesystem"
	"github.com/quichefs/quiche/http"
)

// The 404 body is a fixed literal; its Content-Length is always computed
// from the literal itself, so changing the text cannot desynchronize them.
var notFoundBody = []byte("<h1>YOU ARE A QUICHE EATER</h1>\r\n")

// NewHandler returns the handler mapping request paths to files below the
// filesystem root. Missing files get the fixed 404; any other filesystem
// failure is answered with a 500 page.
func NewHandler(fs filesystem.Filesystem) http.Handler {
	return func(ctx *http.RequestCtx) {
		path := string(ctx.Request.Path)

		content, err := localFileContent(fs, path)
		switch {
		case err == nil:
			ctx.Response.WithStatus(http.StatusOK).
				WithBody([]byte(MimeTypeFromPath(path)), content)
		case errors.Is(err, filesystem.ErrFileNotFound):
			ctx.Response.WithStatus(http.StatusNotFound).
				WithBody(http.ContentTypeHtml, notFoundBody)
		default:
			slog.Error("reading file error", "path", path, "error", err)
			ctx.Response.WithStatusPage(http.StatusInternalServerError)
		}
	}
}

// localFileContent strips the leading slash and reads the file relative to
// the root. Paths climbing out of the root with ".." are answered exactly
// like missing files, leaking nothing about the filesystem.
func localFileContent(fs filesystem.Filesystem, path string) ([]byte, error) {
	rel := strings.TrimPrefix(path, "/")

	for _, segment := range strings.Split(rel, "/") {
		if segment == ".." {
			return nil, filesystem.ErrFileNotFound
		}
	}

	return fs.ReadFile(rel)
}
