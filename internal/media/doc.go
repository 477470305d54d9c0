// Package media implements the discovery and metadata pipeline of the viewer:
// resolution extraction, display URL materialization, folder scanning,
// collision-safe copying and the media loader that ties them together.
//
// All operations are synchronous. Each call opens its own file handles and
// closes them before returning; a Service holds configuration only, so one
// instance can be shared by concurrent requests.
package media
