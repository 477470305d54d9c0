package media

import (
	"errors"
	"fmt"

	"media-viewer-core/internal/mediatypes"
)

var (
	// ErrNoParentFolder is returned by the scanners when the path has no parent.
	ErrNoParentFolder = errors.New("cannot get parent folder")
	// ErrSourceMissing is returned by Copy when the source does not exist.
	ErrSourceMissing = errors.New("source file does not exist")
	// ErrInvalidFileName is returned by Copy when the source has no file name.
	ErrInvalidFileName = errors.New("invalid source file name")
	// ErrSourceIsDirectory is returned by Copy for directory sources.
	ErrSourceIsDirectory = errors.New("source is a directory")
	// ErrTooManyCollisions is returned by Copy when every candidate name is taken.
	ErrTooManyCollisions = errors.New("too many naming collisions")
)

// AccessError reports a file that is missing or unreadable.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot access file: %v", e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// DecodeError reports a header that could not be parsed.
type DecodeError struct {
	Path string
	Kind mediatypes.Kind
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to read %s dimensions from %s: %v", e.Kind, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
