package media

import (
	"image"
	"image/gif"
	"os"

	// Raster decoders sniffed by image.DecodeConfig
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"media-viewer-core/internal/filesystem"
	"media-viewer-core/internal/logging"
	"media-viewer-core/internal/mediatypes"
)

// GetResolution returns the pixel dimensions of path for the given kind.
// Only headers are read; pixel data is never decoded. Video always yields 0x0.
func (s *Service) GetResolution(path string, kind mediatypes.Kind) (Resolution, error) {
	switch kind {
	case mediatypes.KindImage:
		return s.imageResolution(path)
	case mediatypes.KindGIF:
		return s.gifResolution(path)
	case mediatypes.KindVideo:
		return Resolution{}, nil
	default:
		return Resolution{}, mediatypes.ErrUnsupportedType
	}
}

// imageResolution detects the raster format from content, not extension.
func (s *Service) imageResolution(path string) (Resolution, error) {
	file, err := s.open(path)
	if err != nil {
		return Resolution{}, err
	}
	defer closeFile(file, path)

	config, format, err := image.DecodeConfig(file)
	if err != nil {
		return Resolution{}, &DecodeError{Path: path, Kind: mediatypes.KindImage, Err: err}
	}

	logging.Debug("Image %s (%s) dimensions: %dx%d", path, format, config.Width, config.Height)
	return Resolution{Width: uint32(config.Width), Height: uint32(config.Height)}, nil
}

// gifResolution reads the logical screen descriptor only; frames may be absent or corrupt.
func (s *Service) gifResolution(path string) (Resolution, error) {
	file, err := s.open(path)
	if err != nil {
		return Resolution{}, err
	}
	defer closeFile(file, path)

	config, err := gif.DecodeConfig(file)
	if err != nil {
		return Resolution{}, &DecodeError{Path: path, Kind: mediatypes.KindGIF, Err: err}
	}

	return Resolution{Width: uint32(config.Width), Height: uint32(config.Height)}, nil
}

func (s *Service) open(path string) (*os.File, error) {
	file, err := filesystem.OpenWithRetry(path, s.retry)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	return file, nil
}

func closeFile(file *os.File, path string) {
	if err := file.Close(); err != nil {
		logging.Warn("failed to close file %s: %v", path, err)
	}
}
