package media

import (
	"media-viewer-core/internal/filesystem"
	"media-viewer-core/internal/mediatypes"
)

// DefaultMaxCopyAttempts bounds the "name (n).ext" counter search in Copy.
const DefaultMaxCopyAttempts = 10000

// Resolution is the pixel size of a media file. 0x0 means unknown.
type Resolution struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// IsZero reports whether the resolution is the unknown sentinel.
func (r Resolution) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}

// Record is the metadata returned for one loaded file.
type Record struct {
	Src        string          `json:"src"`
	Name       string          `json:"name"`
	FilePath   string          `json:"filePath"`
	Type       mediatypes.Kind `json:"type"`
	Resolution Resolution      `json:"resolution"`
	Size       uint64          `json:"size"`
}

// Config holds Service settings.
type Config struct {
	Retry           filesystem.RetryConfig
	MaxCopyAttempts int
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Retry:           filesystem.DefaultRetryConfig(),
		MaxCopyAttempts: DefaultMaxCopyAttempts,
	}
}

// Service exposes the media operations. It holds no mutable state.
type Service struct {
	retry           filesystem.RetryConfig
	maxCopyAttempts int
}

// NewService creates a Service. A non-positive MaxCopyAttempts selects the default.
func NewService(cfg Config) *Service {
	if cfg.MaxCopyAttempts <= 0 {
		cfg.MaxCopyAttempts = DefaultMaxCopyAttempts
	}
	return &Service{
		retry:           cfg.Retry,
		maxCopyAttempts: cfg.MaxCopyAttempts,
	}
}
