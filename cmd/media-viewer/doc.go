// Package main provides the entry point for the media viewer core service.
//
// The service is the backend of a desktop media viewer. It answers the UI's
// questions about local files over a small HTTP/JSON command surface bound to
// localhost: what kind of media a file is, how large it is, its pixel
// dimensions, the URL the UI should display it with, which other media live
// in the same folder (optionally the whole tree below it), and it copies
// files into a destination folder without ever overwriting.
//
// # Application Lifecycle
//
//  1. Configuration Loading: Reads environment variables and prepares the data directory
//  2. Metrics Setup: Registers the filesystem observer and pre-populates labels
//  3. Database Initialization: Opens the SQLite store for launch paths and settings
//  4. Launch Arguments: Files passed on the command line are queued for the UI
//  5. HTTP Server Setup: Configures routes and middleware, then starts serving
//  6. Graceful Shutdown: Handles SIGINT/SIGTERM, stops servers and closes the database
//
// # HTTP Servers
//
//  1. Command Server (default 127.0.0.1:4317):
//     - /api/media, /api/media/batch, /api/media/size, /api/media/url, /api/media/bytes
//     - /api/media/copy, /api/media/supported
//     - /api/scan, /api/scan/recursive
//     - /api/launch/take, /api/settings
//     - /health, /livez, /version
//
//  2. Metrics Server (default port 9091, optional):
//     - Prometheus metrics endpoint (/metrics)
//
// See [media-viewer-core/internal/startup] for the environment variables.
//
// # Build Requirements
//
// CGO is required for SQLite:
//
//	CGO_ENABLED=1 go build -o media-viewer ./cmd/media-viewer
package main
