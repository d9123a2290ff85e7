package fileserver

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/quichefs/quiche/filesystem"
	"github.com/quichefs/quiche/http"
)

func serve(handler http.Handler, path string) *http.RequestCtx {
	ctx := &http.RequestCtx{}
	ctx.Request.Path = []byte(path)
	handler(ctx)
	return ctx
}

func TestHandlerServesFile(t *testing.T) {
	root := t.TempDir()
	content := []byte("body { color: red; }")
	if err := os.WriteFile(filepath.Join(root, "style.css"), content, 0644); err != nil {
		t.Fatal(err)
	}

	handler := NewHandler(filesystem.NewLocalFilesystem(root))

	ctx := serve(handler, "/style.css")

	if ctx.Response.Status != http.StatusOK {
		t.Errorf("expected 200, got %d", ctx.Response.Status)
	}
	if string(ctx.Response.ContentType) != "text/css" {
		t.Errorf("expected text/css, got %s", ctx.Response.ContentType)
	}
	if !bytes.Equal(ctx.Response.Body, content) {
		t.Errorf("body should be the file contents, got %q", ctx.Response.Body)
	}
}

func TestHandlerNotFound(t *testing.T) {
	handler := NewHandler(filesystem.NewLocalFilesystem(t.TempDir()))

	// The 404 is one fixed response, whichever missing path was asked for.
	for _, path := range []string{"/missing.html", "/a/b/c.png", "/x"} {
		ctx := serve(handler, path)

		if ctx.Response.Status != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, ctx.Response.Status)
		}
		if !bytes.Equal(ctx.Response.Body, notFoundBody) {
			t.Errorf("%s: expected the fixed body, got %q", path, ctx.Response.Body)
		}
	}

	if len(notFoundBody) != 33 {
		t.Errorf("fixed 404 body must stay 33 bytes, got %d", len(notFoundBody))
	}
}

func TestHandlerRefusesTraversal(t *testing.T) {
	root := t.TempDir()

	outside := filepath.Join(root, "..", "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0644); err != nil {
		t.Fatal(err)
	}
	defer os.Remove(outside)

	handler := NewHandler(filesystem.NewLocalFilesystem(root))

	ctx := serve(handler, "/../secret.txt")

	if ctx.Response.Status != http.StatusNotFound {
		t.Errorf("traversal should look like a missing file, got %d", ctx.Response.Status)
	}
}
