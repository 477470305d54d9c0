// Package logging provides a simple leveled logging interface for the
// media viewer core.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information (scan decisions, copy candidates)
//   - INFO: General operational messages
//   - WARN: Warning conditions, including failures the loader downgrades to defaults
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the process
//
// The log level is configured via the DEBUG or LOG_LEVEL environment variables
// and can be overridden at runtime with SetLevel.
package logging
