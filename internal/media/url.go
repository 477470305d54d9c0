package media

import (
	"strings"

	"media-viewer-core/internal/filesystem"
)

// GetDisplayURL checks that path is accessible and returns its display URL.
func (s *Service) GetDisplayURL(path string) (string, error) {
	if _, err := filesystem.StatWithRetry(path, s.retry); err != nil {
		return "", &AccessError{Path: path, Err: err}
	}
	return DisplayURL(path), nil
}

// DisplayURL rewrites a filesystem path as a file URL without touching disk.
//
//	/a/b/c.png             -> file:///a/b/c.png
//	C:\a\c.png             -> file:///C:/a/c.png
//	\\server\share\c.png   -> file://server/share/c.png
//
// Images, GIFs and videos all use the same form.
func DisplayURL(path string) string {
	slashed := strings.ReplaceAll(path, `\`, "/")
	if strings.HasPrefix(path, `\\`) {
		return "file:" + slashed
	}
	return "file:///" + strings.TrimPrefix(slashed, "/")
}
