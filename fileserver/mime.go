package fileserver

import "strings"

const defaultMimeType = "application/octet-stream"

var mimeTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".gif":  "image/gif",
}

// MimeTypeFromPath resolves the Content-Type for a request path from its
// extension, the substring from the last dot onward. Unknown or missing
// extensions fall back to application/octet-stream.
func MimeTypeFromPath(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		if mime, found := mimeTypes[path[i:]]; found {
			return mime
		}
	}
	return defaultMimeType
}
