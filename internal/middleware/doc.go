// Package middleware provides HTTP middleware for the media viewer command surface.
//
// It includes:
//   - Request logging in W3C Extended Log Format
//   - Per-route Prometheus request metrics
//   - gzip compression of JSON responses such as large folder listings
package middleware
