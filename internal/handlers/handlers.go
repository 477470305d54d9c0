package handlers

import (
	"time"

	"media-viewer-core/internal/database"
	"media-viewer-core/internal/launch"
	"media-viewer-core/internal/media"
	"media-viewer-core/internal/metrics"
)

// Handlers serves the command surface.
type Handlers struct {
	media  *media.Service
	db     *database.Database
	launch *launch.Queue
}

// New creates Handlers over the given services.
func New(svc *media.Service, db *database.Database, queue *launch.Queue) *Handlers {
	return &Handlers{
		media:  svc,
		db:     db,
		launch: queue,
	}
}

// observe records a finished command invocation.
func observe(command string, start time.Time, err error) {
	metrics.ObserveCommand(command, time.Since(start).Seconds(), err)
}
