package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"media-viewer-core/internal/database"
	"media-viewer-core/internal/filesystem"
	"media-viewer-core/internal/handlers"
	"media-viewer-core/internal/launch"
	"media-viewer-core/internal/logging"
	"media-viewer-core/internal/media"
	"media-viewer-core/internal/metrics"
	"media-viewer-core/internal/middleware"
	"media-viewer-core/internal/startup"

	"github.com/gorilla/mux"
)

func main() {
	startTime := time.Now()

	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	filesystem.SetObserver(metrics.NewFilesystemObserver())
	metrics.InitializeMetrics()
	metrics.SetAppInfo(startup.Version, startup.Commit, startup.GoVersion)

	ctx := context.Background()

	dbStart := time.Now()
	db, err := database.New(ctx, config.DatabasePath)
	if err != nil {
		startup.LogFatal("Failed to initialize database: %v", err)
	}
	startup.LogDatabaseInit(time.Since(dbStart))

	queue := launch.NewQueue(db, launch.Options{Persist: config.PersistLaunchPaths})
	launchPaths := launch.CollectPaths(os.Args[1:])
	if err := queue.Stash(ctx, launchPaths); err != nil {
		logging.Error("Failed to queue launch paths: %v", err)
	}
	startup.LogLaunchPaths(launchPaths, queue.Enabled())

	svc := media.NewService(media.Config{
		Retry:           filesystem.DefaultRetryConfig(),
		MaxCopyAttempts: config.MaxCopyAttempts,
	})
	h := handlers.New(svc, db, queue)

	router := setupRouter(h)
	startup.LogHTTPRoutes(router, config.LogHealthChecks)

	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	handler := middleware.Compression(middleware.DefaultCompressionConfig())(
		middleware.Logger(loggingConfig)(router),
	)

	srv := &http.Server{
		Addr:              config.ListenAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsSrv = newMetricsServer(config.MetricsAddr(), h)
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error("Metrics server error: %v", err)
			}
		}()
	}

	done := make(chan struct{})
	go handleShutdown(srv, metricsSrv, db, done)

	startup.LogServerStarted(startup.ServerConfig{
		BindAddr:        config.BindAddr,
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		startup.LogFatal("Server error: %v", err)
	}
	<-done
}

func setupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Metrics(middleware.DefaultMetricsConfig()))

	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	// API routes sit on the root router so a method mismatch answers 405.
	r.HandleFunc("/api/media", h.LoadMedia).Methods("GET").Name("load_media")
	r.HandleFunc("/api/media/batch", h.LoadMediaBatch).Methods("POST").Name("load_media_batch")
	r.HandleFunc("/api/media/size", h.GetMediaSize).Methods("GET").Name("get_media_size")
	r.HandleFunc("/api/media/url", h.GetMediaURL).Methods("GET").Name("get_media_url")
	r.HandleFunc("/api/media/bytes", h.ReadFileBytes).Methods("GET").Name("read_file_bytes")
	r.HandleFunc("/api/media/copy", h.CopyMedia).Methods("POST").Name("copy_media")
	r.HandleFunc("/api/media/supported", h.IsSupported).Methods("GET").Name("is_supported")

	r.HandleFunc("/api/scan", h.ScanFolder).Methods("GET").Name("scan_folder")
	r.HandleFunc("/api/scan/recursive", h.ScanFolderRecursive).Methods("GET").Name("scan_folder_recursive")

	r.HandleFunc("/api/launch/take", h.TakeLaunchPaths).Methods("POST").Name("take_launch_paths")

	r.HandleFunc("/api/settings", h.GetSettings).Methods("GET").Name("get_settings")
	r.HandleFunc("/api/settings", h.UpdateSettings).Methods("PUT").Name("update_settings")

	return r
}

func newMetricsServer(addr string, h *handlers.Handlers) *http.Server {
	sm := http.NewServeMux()
	sm.Handle("/metrics", h.MetricsHandler())
	sm.HandleFunc("/health", h.LivenessCheck)

	return &http.Server{
		Addr:              addr,
		Handler:           sm,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func handleShutdown(srv, metricsSrv *http.Server, db *database.Database, done chan<- struct{}) {
	defer close(done)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if metricsSrv != nil {
		startup.LogShutdownStep("Shutting down metrics server")
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logging.Warn("Metrics server shutdown error: %v", err)
		} else {
			startup.LogShutdownStepComplete("Metrics server stopped")
		}
	}

	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	startup.LogShutdownStep("Closing database")
	if err := db.Close(); err != nil {
		logging.Warn("Database close error: %v", err)
	} else {
		startup.LogShutdownStepComplete("Database closed")
	}

	startup.LogShutdownComplete()
}
