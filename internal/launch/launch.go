// Package launch handles files passed to the viewer by the operating system,
// either as command-line arguments or through a file association.
//
// The paths arrive before any UI surface is ready to show them, so they are
// stashed once at process start and taken once by the first surface that
// asks. Whether stashing happens at all is decided by the caller through
// Options.Persist; some platforms deliver file-open events differently and
// leave it off.
package launch

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"

	"media-viewer-core/internal/logging"
)

// Store persists pending launch paths.
type Store interface {
	StashLaunchPaths(ctx context.Context, paths []string) error
	TakeLaunchPaths(ctx context.Context) ([]string, error)
}

// Options configures a Queue.
type Options struct {
	// Persist enables stashing of launch paths for this platform.
	Persist bool
}

// Queue owns the pending launch paths.
type Queue struct {
	store   Store
	persist bool
}

// NewQueue creates a Queue backed by store.
func NewQueue(store Store, opts Options) *Queue {
	return &Queue{store: store, persist: opts.Persist}
}

// Enabled reports whether launch paths are persisted.
func (q *Queue) Enabled() bool {
	return q.persist
}

// Stash replaces the pending paths with paths for a later Take. Stashing an
// empty list still reaches the store so paths left by an earlier process are
// dropped. It is a no-op when persistence is disabled.
func (q *Queue) Stash(ctx context.Context, paths []string) error {
	if !q.persist {
		return nil
	}
	logging.Debug("Stashing %d launch path(s)", len(paths))
	return q.store.StashLaunchPaths(ctx, paths)
}

// Take returns the pending launch paths and clears them.
func (q *Queue) Take(ctx context.Context) ([]string, error) {
	if !q.persist {
		return []string{}, nil
	}
	return q.store.TakeLaunchPaths(ctx)
}

// CollectPaths extracts file paths from process arguments (without the program
// name). Flags starting with "-" are ignored and file:// URLs are converted to
// local paths.
func CollectPaths(args []string) []string {
	paths := []string{}
	for _, arg := range args {
		if arg == "" || strings.HasPrefix(arg, "-") {
			continue
		}
		paths = append(paths, argToPath(arg))
	}
	return paths
}

func argToPath(arg string) string {
	u, err := url.Parse(arg)
	if err != nil || u.Scheme != "file" {
		return arg
	}

	p := u.Path
	if u.Host != "" && u.Host != "localhost" {
		// file://server/share/x.png names a network share.
		return filepath.FromSlash("//" + u.Host + p)
	}
	// file:///C:/x.png carries a drive letter after the leading slash.
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.FromSlash(p)
}
