package media

import (
	"io/fs"
	"path/filepath"
	"strings"

	"media-viewer-core/internal/filesystem"
	"media-viewer-core/internal/logging"
	"media-viewer-core/internal/mediatypes"
	"media-viewer-core/internal/metrics"
)

const (
	scanShallow   = "shallow"
	scanRecursive = "recursive"
)

// parentFolder returns the absolute folder containing path.
func parentFolder(path string) (string, error) {
	if path == "" {
		return "", ErrNoParentFolder
	}
	cleaned := filepath.Clean(path)
	parent := filepath.Dir(cleaned)
	if parent == cleaned {
		return "", ErrNoParentFolder
	}
	abs, err := filepath.Abs(parent)
	if err != nil {
		return "", err
	}
	return abs, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// ScanFolder lists the media files directly inside the folder containing path.
// Hidden entries are not filtered here. Entries the directory listing fails on
// are skipped; a missing or unreadable folder is an error.
func (s *Service) ScanFolder(path string) ([]string, error) {
	folder, err := parentFolder(path)
	if err != nil {
		return nil, err
	}

	if _, err := filesystem.StatWithRetry(folder, s.retry); err != nil {
		return nil, err
	}

	entries, err := filesystem.ReadDirWithRetry(folder, s.retry)
	skipped := 0
	if err != nil {
		if len(entries) == 0 {
			return nil, err
		}
		logging.Debug("Listing of %s stopped early after %d entries: %v", folder, len(entries), err)
		skipped++
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !mediatypes.IsViewable(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(folder, entry.Name()))
	}

	recordScan(scanShallow, len(entries), skipped, len(files))
	return files, nil
}

// ScanFolderRecursive walks the whole tree under the folder containing path.
// Any file or directory whose name starts with "." is excluded along with
// everything beneath it. The starting folder itself is never excluded.
func (s *Service) ScanFolderRecursive(path string) ([]string, error) {
	folder, err := parentFolder(path)
	if err != nil {
		return nil, err
	}

	// WalkDir does not follow a symlinked root, so walk its target and
	// report paths under the folder the caller named.
	root, err := filepath.EvalSymlinks(folder)
	if err != nil {
		return nil, err
	}

	files := []string{}
	visited, skipped := 0, 0

	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if p == root {
				return walkErr
			}
			logging.Debug("Skipping unreadable entry %s: %v", p, walkErr)
			skipped++
			return nil
		}
		if p == root {
			return nil
		}

		visited++
		if isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && mediatypes.IsViewable(d.Name()) {
			files = append(files, underFolder(folder, root, p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	recordScan(scanRecursive, visited, skipped, len(files))
	return files, nil
}

// underFolder rewrites p, found while walking root, onto folder.
func underFolder(folder, root, p string) string {
	if folder == root {
		return p
	}
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return p
	}
	return filepath.Join(folder, rel)
}

func recordScan(mode string, visited, skipped, returned int) {
	metrics.ScannerEntriesVisited.WithLabelValues(mode).Add(float64(visited))
	if skipped > 0 {
		metrics.ScannerEntriesSkipped.WithLabelValues(mode).Add(float64(skipped))
	}
	metrics.ScannerItemsReturned.WithLabelValues(mode).Observe(float64(returned))
}
