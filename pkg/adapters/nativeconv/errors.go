package nativeconv

import "errors"

var (
	// ErrSourceNotFound is returned when no source image exists for a frame.
	ErrSourceNotFound = errors.New("nativeconv: source image not found")

	// ErrSizeMismatch is returned when a source image does not have the configured size.
	ErrSizeMismatch = errors.New("nativeconv: image size does not match resolution")
)
