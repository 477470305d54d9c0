package handlers

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"media-viewer-core/internal/logging"
	"media-viewer-core/internal/media"
	"media-viewer-core/internal/mediatypes"
)

var (
	errMissingPath   = errors.New("missing required parameter: path")
	errMissingExt    = errors.New("missing required parameter: ext")
	errMissingSource = errors.New("missing required field: source")
)

// writeJSON encodes v as JSON and writes it to the response writer.
// Any encoding or write errors are logged since we typically cannot
// recover from them in an HTTP handler context.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes an error response as JSON with the given status code.
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		logging.Error("failed to encode JSON error response: %v", err)
	}
}

// writeCommandError logs a failed command and answers with the matching status.
func writeCommandError(w http.ResponseWriter, command string, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logging.Error("%s failed: %v", command, err)
	} else {
		logging.Debug("%s rejected (%d): %v", command, status, err)
	}
	writeJSONError(w, err.Error(), status)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errMissingPath),
		errors.Is(err, errMissingExt),
		errors.Is(err, errMissingSource),
		errors.Is(err, media.ErrNoParentFolder),
		errors.Is(err, media.ErrInvalidFileName),
		errors.Is(err, media.ErrSourceIsDirectory):
		return http.StatusBadRequest
	case errors.Is(err, mediatypes.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, media.ErrSourceMissing), errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, media.ErrTooManyCollisions):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// requirePath returns the "path" query parameter.
func requirePath(r *http.Request) (string, error) {
	path := r.URL.Query().Get("path")
	if path == "" {
		return "", errMissingPath
	}
	return path, nil
}
