package media

import (
	"io"
	"path/filepath"

	"media-viewer-core/internal/filesystem"
)

// GetSize returns the byte size of path from filesystem metadata.
func (s *Service) GetSize(path string) (uint64, error) {
	info, err := filesystem.StatWithRetry(path, s.retry)
	if err != nil {
		return 0, &AccessError{Path: path, Err: err}
	}
	return uint64(info.Size()), nil
}

// ReadBytes returns the full contents of path.
func (s *Service) ReadBytes(path string) ([]byte, error) {
	file, err := filesystem.OpenWithRetry(path, s.retry)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	defer closeFile(file, path)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	return data, nil
}

// displayName returns the final path element, or "" when there is none.
func displayName(path string) string {
	if path == "" {
		return ""
	}
	name := filepath.Base(path)
	switch name {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return name
}
