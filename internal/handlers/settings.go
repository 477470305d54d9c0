package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"media-viewer-core/internal/logging"
)

// GetSettings returns the viewer settings.
func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	const command = "get_settings"
	start := time.Now()

	settings, err := h.db.GetSettings(r.Context())
	observe(command, start, err)
	if err != nil {
		writeCommandError(w, command, err)
		return
	}

	writeJSON(w, settings)
}

// UpdateSettings replaces the viewer settings. Fields missing from the body
// keep their current values.
func (h *Handlers) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	const command = "update_settings"
	start := time.Now()

	settings, err := h.db.GetSettings(r.Context())
	if err != nil {
		observe(command, start, err)
		writeCommandError(w, command, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		observe(command, start, err)
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err = h.db.SaveSettings(r.Context(), settings)
	observe(command, start, err)
	if err != nil {
		writeCommandError(w, command, err)
		return
	}

	logging.Info("Settings updated: acrylic=%v destination=%q", settings.EnableAcrylic, settings.DestinationFolder)
	writeJSON(w, settings)
}
