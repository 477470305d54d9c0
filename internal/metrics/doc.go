// Package metrics declares the Prometheus collectors for the media viewer core.
//
// Collectors are registered with the default registry through promauto at
// package init, so importing the package is enough to make them available on
// the /metrics endpoint served by promhttp.
//
// # Groups
//
//   - HTTP: request counts, durations, in-flight gauge (middleware)
//   - Commands: per-command outcome and duration (handlers)
//   - Media loader: records built per kind, resolution and size fallbacks
//   - Scanner: items returned, entries visited and skipped per scan mode
//   - Copy: naming collisions and bytes written
//   - Filesystem: operation durations and stale-handle retries (via Observer)
//   - Database: query counts and durations, pending launch paths
//
// Call InitializeMetrics once at startup so every label combination is
// exported from the first scrape.
package metrics
