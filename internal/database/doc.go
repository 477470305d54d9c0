// Package database provides SQLite persistence for the media viewer core.
//
// It stores the state that must survive a restart of the host application:
//   - Pending launch paths handed over by the operating system before the UI
//     is ready to receive them
//   - Viewer settings (acrylic background, default copy destination)
//
// Scan results and media records are never stored; they are recomputed on
// every request. The database uses WAL mode and creates its schema on open.
package database
