package mediatypes

import (
	"errors"
	"path/filepath"
	"strings"
)

// Kind is the display category of a media file.
type Kind string

const (
	// KindImage is a still raster image (jpg, jpeg, png).
	KindImage Kind = "image"
	// KindGIF is a possibly animated GIF.
	KindGIF Kind = "gif"
	// KindVideo is a video container played by the display surface.
	KindVideo Kind = "video"
)

// ErrUnsupportedType is returned when an extension is not in the viewer set.
var ErrUnsupportedType = errors.New("unsupported file type")

// ViewerExtensions is the narrow table. It gates Classify, the media loader
// and both folder scanners.
var ViewerExtensions = map[string]Kind{
	".jpg":  KindImage,
	".jpeg": KindImage,
	".png":  KindImage,
	".gif":  KindGIF,
	".mp4":  KindVideo,
	".webm": KindVideo,
}

// SupportedExtensions is the broad table behind IsSupported. GIF counts as an
// image here, and several formats the viewer cannot open yet are listed.
var SupportedExtensions = map[string]Kind{
	".gif":  KindImage,
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".webp": KindImage,
	".bmp":  KindImage,
	".tiff": KindImage,
	".mp4":  KindVideo,
	".mov":  KindVideo,
	".avi":  KindVideo,
	".mkv":  KindVideo,
	".webm": KindVideo,
}

// MimeTypes maps file extensions to their MIME types.
var MimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
}

// Ext returns the lowercased extension of path including the leading dot,
// or "" when there is none. A dotfile such as ".png" has no extension.
func Ext(path string) string {
	ext := filepath.Ext(path)
	if ext == filepath.Base(path) {
		return ""
	}
	return strings.ToLower(ext)
}

// normalizeExt accepts "jpg", ".jpg" or ".JPG" and returns ".jpg".
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Classify returns the Kind for path based on its extension alone.
func Classify(path string) (Kind, error) {
	if kind, ok := ViewerExtensions[Ext(path)]; ok {
		return kind, nil
	}
	return "", ErrUnsupportedType
}

// IsViewable reports whether path would pass the scanner filter.
func IsViewable(path string) bool {
	_, ok := ViewerExtensions[Ext(path)]
	return ok
}

// IsSupported reports whether ext is in the broad table. The leading dot is optional.
func IsSupported(ext string) bool {
	_, ok := SupportedExtensions[normalizeExt(ext)]
	return ok
}

// GetMimeType returns the MIME type for a file path.
// Returns "application/octet-stream" if the extension is not recognized.
func GetMimeType(path string) string {
	if mime, ok := MimeTypes[Ext(path)]; ok {
		return mime
	}
	return "application/octet-stream"
}
