// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig].
// A dotenv file (".env" in the working directory, or the file named by
// ENV_FILE) is read first; variables already present in the environment win.
//
//   - BIND_ADDR: Listen address for the command surface (default: 127.0.0.1)
//   - PORT: Command surface port (default: 4317)
//   - METRICS_PORT: Prometheus metrics server port (default: 9091)
//   - METRICS_ENABLED: Enable or disable metrics server (default: true)
//   - DATA_DIR: Directory holding the SQLite database (default: user config dir + /media-viewer)
//   - MAX_COPY_ATTEMPTS: Ceiling for the copy collision counter (default: 10000)
//   - PERSIST_LAUNCH_PATHS: Queue files passed at launch (default: true on windows and linux)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//
// Invalid boolean or integer values fall back to their defaults with a warning.
// The data directory is created if missing and must be writable.
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo].
//
// # Lifecycle Logging
//
//   - [LogDatabaseInit]: Database initialization timing
//   - [LogLaunchPaths]: Files handed to the process at launch
//   - [LogHTTPRoutes]: Registered HTTP routes (debug level)
//   - [LogServerStarted]: Server endpoints and startup duration
//   - [LogShutdownInitiated], [LogShutdownComplete]: Graceful shutdown
package startup
