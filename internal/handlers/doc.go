// Package handlers implements the HTTP command surface of the media viewer.
//
// Every command takes its file path from the "path" query parameter and
// answers with JSON, except [Handlers.ReadFileBytes] which streams the raw
// file. Failures are reported as {"error": "..."} with a status derived from
// the underlying error: unsupported types map to 415, missing files to 404,
// malformed requests to 400 and copy exhaustion to 409.
package handlers
