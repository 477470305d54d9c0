package media

import (
	"media-viewer-core/internal/logging"
	"media-viewer-core/internal/mediatypes"
	"media-viewer-core/internal/metrics"
)

// Load builds the Record for one file. Only an unrecognized extension or an
// inaccessible file fail the call; resolution and size failures fall back to
// zero values so one odd file does not break a listing.
func (s *Service) Load(path string) (*Record, error) {
	kind, err := mediatypes.Classify(path)
	if err != nil {
		return nil, err
	}

	src, err := s.GetDisplayURL(path)
	if err != nil {
		return nil, err
	}

	resolution, err := s.GetResolution(path, kind)
	if err != nil {
		logging.Warn("Resolution unavailable for %s, using 0x0: %v", path, err)
		metrics.ResolutionFailures.WithLabelValues(string(kind)).Inc()
		resolution = Resolution{}
	}

	size, err := s.GetSize(path)
	if err != nil {
		logging.Warn("Size unavailable for %s, using 0: %v", path, err)
		metrics.SizeLookupFailures.Inc()
		size = 0
	}

	metrics.MediaLoadsTotal.WithLabelValues(string(kind)).Inc()

	return &Record{
		Src:        src,
		Name:       displayName(path),
		FilePath:   path,
		Type:       kind,
		Resolution: resolution,
		Size:       size,
	}, nil
}
