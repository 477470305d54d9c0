package metrics

// Commands lists every command surface operation label.
var Commands = []string{
	"load_media",
	"load_media_batch",
	"scan_folder",
	"scan_folder_recursive",
	"get_media_size",
	"get_media_url",
	"read_file_bytes",
	"copy_media",
	"is_supported",
	"take_launch_paths",
	"get_settings",
	"update_settings",
}

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, cmd := range Commands {
		CommandsTotal.WithLabelValues(cmd, "success")
		CommandsTotal.WithLabelValues(cmd, "error")
		CommandDuration.WithLabelValues(cmd)
	}

	for _, kind := range []string{"image", "gif", "video"} {
		MediaLoadsTotal.WithLabelValues(kind)
		ResolutionFailures.WithLabelValues(kind)
	}

	for _, mode := range []string{"shallow", "recursive"} {
		ScannerItemsReturned.WithLabelValues(mode)
		ScannerEntriesVisited.WithLabelValues(mode)
		ScannerEntriesSkipped.WithLabelValues(mode)
	}

	for _, op := range []string{"stat", "open", "readdir"} {
		FilesystemOperationDuration.WithLabelValues(op)
		FilesystemOperationErrors.WithLabelValues(op)
		FilesystemRetryAttempts.WithLabelValues(op)
		FilesystemRetrySuccess.WithLabelValues(op)
		FilesystemRetryFailures.WithLabelValues(op)
		FilesystemStaleErrors.WithLabelValues(op)
	}

	for _, op := range []string{"initialize_schema", "stash_launch_paths", "take_launch_paths",
		"get_setting", "set_setting"} {
		DBQueryTotal.WithLabelValues(op, "success")
		DBQueryTotal.WithLabelValues(op, "error")
		DBQueryDuration.WithLabelValues(op)
	}
}
