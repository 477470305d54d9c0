package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_viewer_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_viewer_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_viewer_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Command surface metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_viewer_commands_total",
			Help: "Total number of command invocations by outcome",
		},
		[]string{"command", "status"},
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_viewer_command_duration_seconds",
			Help:    "Command duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"command"},
	)
)

// Media loader metrics
var (
	MediaLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_viewer_media_loads_total",
			Help: "Total number of media records built, by kind",
		},
		[]string{"kind"},
	)

	ResolutionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_viewer_resolution_failures_total",
			Help: "Resolution lookups that failed and were replaced by 0x0",
		},
		[]string{"kind"},
	)

	SizeLookupFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_viewer_size_lookup_failures_total",
			Help: "Size lookups that failed and were replaced by 0",
		},
	)
)

// Scanner metrics
var (
	ScannerItemsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_viewer_scanner_items_returned",
			Help:    "Number of paths returned by scan operations",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		},
		[]string{"mode"},
	)

	ScannerEntriesVisited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_viewer_scanner_entries_visited_total",
			Help: "Directory entries examined by scan operations",
		},
		[]string{"mode"},
	)

	ScannerEntriesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_viewer_scanner_entries_skipped_total",
			Help: "Directory entries that could not be enumerated and were skipped",
		},
		[]string{"mode"},
	)
)

// Copy metrics
var (
	CopyCollisions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_viewer_copy_collisions_total",
			Help: "Candidate destination names found to be taken",
		},
	)

	CopyBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_viewer_copy_bytes_total",
			Help: "Bytes written by copy operations",
		},
	)
)

// Filesystem metrics
var (
	FilesystemOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_viewer_filesystem_operation_duration_seconds",
			Help:    "Filesystem operation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	FilesystemOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_viewer_filesystem_operation_errors_total",
			Help: "Filesystem operations that returned an error",
		},
		[]string{"operation"},
	)

	FilesystemRetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_viewer_filesystem_retry_attempts_total",
			Help: "Retries caused by stale file handles",
		},
		[]string{"operation"},
	)

	FilesystemRetrySuccess = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_viewer_filesystem_retry_success_total",
			Help: "Operations that succeeded after at least one retry",
		},
		[]string{"operation"},
	)

	FilesystemRetryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_viewer_filesystem_retry_failures_total",
			Help: "Operations that still failed after all retries",
		},
		[]string{"operation"},
	)

	FilesystemStaleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_viewer_filesystem_stale_errors_total",
			Help: "Stale file handle errors observed",
		},
		[]string{"operation"},
	)
)

// Database metrics
var (
	DBQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_viewer_db_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_viewer_db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)

	LaunchPathsPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_viewer_launch_paths_pending",
			Help: "Launch paths stashed and not yet taken by a UI surface",
		},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "media_viewer_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}

// ObserveCommand records the outcome and duration of one command invocation.
func ObserveCommand(command string, durationSeconds float64, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	CommandsTotal.WithLabelValues(command, status).Inc()
	CommandDuration.WithLabelValues(command).Observe(durationSeconds)
}
