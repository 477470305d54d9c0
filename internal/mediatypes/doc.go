// Package mediatypes classifies files by extension for the media viewer core.
//
// It has no dependencies beyond the standard library so every other package
// can import it without creating cycles.
//
// # Two extension tables
//
// ViewerExtensions is the narrow set the viewer actually opens:
//
//	jpg, jpeg, png -> image
//	gif            -> gif
//	mp4, webm      -> video
//
// It gates Classify, the media loader and the folder scanners.
//
// SupportedExtensions is a broader set (adds webp, bmp, tiff, mov, avi, mkv and
// folds gif into image) consulted only by IsSupported. The two tables are kept
// separate on purpose; see DESIGN.md before merging them.
//
// # Usage
//
//	kind, err := mediatypes.Classify("/photos/IMG_0001.JPG")
//	if errors.Is(err, mediatypes.ErrUnsupportedType) {
//	    // skip the file
//	}
package mediatypes
