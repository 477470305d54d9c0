package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"media-viewer-core/internal/logging"
	"media-viewer-core/internal/media"
	"media-viewer-core/internal/mediatypes"
)

// LoadMedia returns the full record for one media file.
func (h *Handlers) LoadMedia(w http.ResponseWriter, r *http.Request) {
	const command = "load_media"
	start := time.Now()

	path, err := requirePath(r)
	if err == nil {
		var record *media.Record
		record, err = h.media.Load(path)
		if err == nil {
			observe(command, start, nil)
			writeJSON(w, record)
			return
		}
	}

	observe(command, start, err)
	writeCommandError(w, command, err)
}

// maxBatchPaths bounds the number of paths accepted by one batch load.
const maxBatchPaths = 1000

// BatchRequest is the body of a load_media_batch call.
type BatchRequest struct {
	Paths []string `json:"paths"`
}

// LoadMediaBatch loads many records in one call. Each path succeeds or fails
// on its own; the response keeps the request order.
func (h *Handlers) LoadMediaBatch(w http.ResponseWriter, r *http.Request) {
	const command = "load_media_batch"
	start := time.Now()

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observe(command, start, err)
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Paths) > maxBatchPaths {
		err := fmt.Errorf("too many paths: %d (max %d)", len(req.Paths), maxBatchPaths)
		observe(command, start, err)
		writeJSONError(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	results := h.media.LoadMany(req.Paths)
	observe(command, start, nil)
	logging.Debug("%s loaded %d file(s) in %v", command, len(results), time.Since(start))
	writeJSON(w, results)
}

// ScanFolder lists the viewable files next to the given file.
func (h *Handlers) ScanFolder(w http.ResponseWriter, r *http.Request) {
	h.scan(w, r, "scan_folder", h.media.ScanFolder)
}

// ScanFolderRecursive lists the viewable files below the given file's folder.
func (h *Handlers) ScanFolderRecursive(w http.ResponseWriter, r *http.Request) {
	h.scan(w, r, "scan_folder_recursive", h.media.ScanFolderRecursive)
}

func (h *Handlers) scan(w http.ResponseWriter, r *http.Request, command string, fn func(string) ([]string, error)) {
	start := time.Now()

	path, err := requirePath(r)
	if err == nil {
		var paths []string
		paths, err = fn(path)
		if err == nil {
			observe(command, start, nil)
			logging.Debug("%s %s returned %d file(s) in %v", command, path, len(paths), time.Since(start))
			writeJSON(w, paths)
			return
		}
	}

	observe(command, start, err)
	writeCommandError(w, command, err)
}

// GetMediaSize returns the byte size of a file.
func (h *Handlers) GetMediaSize(w http.ResponseWriter, r *http.Request) {
	const command = "get_media_size"
	start := time.Now()

	path, err := requirePath(r)
	if err == nil {
		var size uint64
		size, err = h.media.GetSize(path)
		if err == nil {
			observe(command, start, nil)
			writeJSON(w, map[string]uint64{"size": size})
			return
		}
	}

	observe(command, start, err)
	writeCommandError(w, command, err)
}

// GetMediaURL returns the display URL for a file.
func (h *Handlers) GetMediaURL(w http.ResponseWriter, r *http.Request) {
	const command = "get_media_url"
	start := time.Now()

	path, err := requirePath(r)
	if err == nil {
		var url string
		url, err = h.media.GetDisplayURL(path)
		if err == nil {
			observe(command, start, nil)
			writeJSON(w, map[string]string{"url": url})
			return
		}
	}

	observe(command, start, err)
	writeCommandError(w, command, err)
}

// ReadFileBytes returns the raw contents of a file.
func (h *Handlers) ReadFileBytes(w http.ResponseWriter, r *http.Request) {
	const command = "read_file_bytes"
	start := time.Now()

	path, err := requirePath(r)
	if err == nil {
		var data []byte
		data, err = h.media.ReadBytes(path)
		if err == nil {
			observe(command, start, nil)
			w.Header().Set("Content-Type", mediatypes.GetMimeType(path))
			w.Header().Set("Content-Length", strconv.Itoa(len(data)))
			w.Header().Set("Cache-Control", "no-cache")
			if _, err := w.Write(data); err != nil {
				logging.Debug("%s: write failed for %s: %v", command, path, err)
			}
			return
		}
	}

	observe(command, start, err)
	writeCommandError(w, command, err)
}

// CopyRequest is the body of a copy_media call.
type CopyRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// CopyMedia copies a file into a destination folder without overwriting. An
// empty destination falls back to the stored destinationFolder setting.
func (h *Handlers) CopyMedia(w http.ResponseWriter, r *http.Request) {
	const command = "copy_media"
	start := time.Now()

	var req CopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observe(command, start, err)
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	dest, status, err := h.copyDestination(r, req.Destination)
	if err != nil {
		observe(command, start, err)
		logging.Debug("%s rejected (%d): %v", command, status, err)
		writeJSONError(w, err.Error(), status)
		return
	}
	if req.Source == "" {
		observe(command, start, errMissingSource)
		writeCommandError(w, command, errMissingSource)
		return
	}

	copied, err := h.media.Copy(req.Source, dest)
	observe(command, start, err)
	if err != nil {
		writeCommandError(w, command, err)
		return
	}

	logging.Info("Copied %s to %s", req.Source, copied)
	writeJSON(w, map[string]string{"path": copied})
}

func (h *Handlers) copyDestination(r *http.Request, requested string) (string, int, error) {
	if requested != "" {
		return requested, 0, nil
	}

	settings, err := h.db.GetSettings(r.Context())
	if err != nil {
		return "", http.StatusInternalServerError, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.DestinationFolder == "" {
		return "", http.StatusBadRequest, fmt.Errorf("no destination given and no destination folder configured")
	}
	return settings.DestinationFolder, 0, nil
}

// IsSupported reports whether an extension is a supported media type.
func (h *Handlers) IsSupported(w http.ResponseWriter, r *http.Request) {
	const command = "is_supported"
	start := time.Now()

	ext := r.URL.Query().Get("ext")
	if ext == "" {
		observe(command, start, errMissingExt)
		writeCommandError(w, command, errMissingExt)
		return
	}

	observe(command, start, nil)
	writeJSON(w, map[string]bool{"supported": mediatypes.IsSupported(ext)})
}
