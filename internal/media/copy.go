package media

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"media-viewer-core/internal/filesystem"
	"media-viewer-core/internal/logging"
	"media-viewer-core/internal/metrics"
)

// Copy copies source into destFolder and returns the path it wrote. An
// existing file is never overwritten: "name.ext" becomes "name (1).ext",
// "name (2).ext" and so on, up to the configured attempt limit.
func (s *Service) Copy(source, destFolder string) (string, error) {
	info, err := filesystem.StatWithRetry(source, s.retry)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrSourceMissing
		}
		return "", &AccessError{Path: source, Err: err}
	}
	if info.IsDir() {
		return "", ErrSourceIsDirectory
	}

	name := displayName(source)
	if name == "" {
		return "", ErrInvalidFileName
	}
	stem, ext := splitName(name)

	for attempt := 0; attempt <= s.maxCopyAttempts; attempt++ {
		candidate := name
		if attempt > 0 {
			candidate = collisionName(stem, ext, attempt)
		}
		dest := filepath.Join(destFolder, candidate)

		taken, err := s.exists(dest)
		if err != nil {
			return "", err
		}
		if taken {
			metrics.CopyCollisions.Inc()
			continue
		}

		written, err := s.copyFile(source, dest, info.Mode().Perm())
		if errors.Is(err, fs.ErrExist) {
			// Created by someone else between the check and the create.
			logging.Debug("Destination %s appeared during copy, trying next name", dest)
			metrics.CopyCollisions.Inc()
			continue
		}
		if err != nil {
			return "", err
		}

		metrics.CopyBytes.Add(float64(written))
		logging.Debug("Copied %s to %s (%d bytes)", source, dest, written)
		return dest, nil
	}

	return "", fmt.Errorf("%w: %s in %s after %d attempts", ErrTooManyCollisions, name, destFolder, s.maxCopyAttempts)
}

// splitName splits a file name into stem and extension without the dot.
// Leading-dot names such as ".bashrc" and a bare trailing dot have no extension.
func splitName(name string) (string, string) {
	ext := filepath.Ext(name)
	if ext == name || ext == "." {
		return strings.TrimSuffix(name, "."), ""
	}
	return strings.TrimSuffix(name, ext), strings.TrimPrefix(ext, ".")
}

func collisionName(stem, ext string, n int) string {
	if ext == "" {
		return fmt.Sprintf("%s (%d)", stem, n)
	}
	return fmt.Sprintf("%s (%d).%s", stem, n, ext)
}

func (s *Service) exists(path string) (bool, error) {
	_, err := filesystem.StatWithRetry(path, s.retry)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// copyFile creates dest exclusively and streams source into it. A partial
// destination is removed on failure.
func (s *Service) copyFile(source, dest string, perm fs.FileMode) (written int64, err error) {
	in, err := filesystem.OpenWithRetry(source, s.retry)
	if err != nil {
		return 0, err
	}
	defer closeFile(in, source)

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		if err != nil {
			if removeErr := os.Remove(dest); removeErr != nil {
				logging.Warn("failed to remove partial copy %s: %v", dest, removeErr)
			}
		}
	}()

	return io.Copy(out, in)
}
