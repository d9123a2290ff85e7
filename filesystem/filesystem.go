package filesystem

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Error constants for better error handling
var (
	ErrFileNotFound = fmt.Errorf("filesystem: file not found")
	ErrInvalidPath  = fmt.Errorf("filesystem: invalid path")
)

// Filesystem is the read boundary of the server. Paths are relative and
// resolved below a fixed root directory.
type Filesystem interface {
	ReadFile(path string) ([]byte, error)
	FileExists(path string) (bool, error)
	FileSize(path string) (int64, error)
}

type localFilesystem struct {
	root string
}

func NewLocalFilesystem(root string) Filesystem {
	return &localFilesystem{root: root}
}

// ReadFile opens and fully reads the file below the root. The handle is
// released on every exit path. A missing file maps to ErrFileNotFound; any
// other failure propagates as-is.
func (filesystem *localFilesystem) ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}

	file, err := os.Open(filepath.Join(filesystem.root, path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Error("closing file error", "error", closeErr)
		}
	}()

	return io.ReadAll(file)
}

func (filesystem *localFilesystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(filepath.Join(filesystem.root, path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (filesystem *localFilesystem) FileSize(path string) (int64, error) {
	info, err := os.Stat(filepath.Join(filesystem.root, path))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrFileNotFound
		}
		return 0, err
	}
	return info.Size(), nil
}
