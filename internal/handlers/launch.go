package handlers

import (
	"net/http"
	"time"
)

// TakeLaunchPaths returns the files passed at launch and clears them. Only
// the first caller receives them.
func (h *Handlers) TakeLaunchPaths(w http.ResponseWriter, r *http.Request) {
	const command = "take_launch_paths"
	start := time.Now()

	paths, err := h.launch.Take(r.Context())
	observe(command, start, err)
	if err != nil {
		writeCommandError(w, command, err)
		return
	}

	writeJSON(w, paths)
}
