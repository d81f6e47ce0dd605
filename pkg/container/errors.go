package container

import (
	"errors"
	"fmt"
)

var (
	// ErrResolutionOutOfRange is returned when a width or height does not fit in 16 bits.
	ErrResolutionOutOfRange = errors.New("container: resolution out of range")

	// ErrMalformedResolution is returned when an artifact does not declare both width and height.
	ErrMalformedResolution = errors.New("container: malformed resolution")

	// ErrMissingPixelArray is returned when an artifact has no usable pixel array.
	ErrMissingPixelArray = errors.New("container: missing pixel array")

	// ErrIOFailure is returned when reading artifacts or writing the container fails.
	ErrIOFailure = errors.New("container: I/O failure")

	// ErrPayloadLength is returned when a frame payload is not width*height*2 bytes.
	ErrPayloadLength = errors.New("container: payload length does not match resolution")

	// ErrResolutionMismatch is returned when a frame declares a different
	// resolution than the one the container was built for.
	ErrResolutionMismatch = errors.New("container: resolution mismatch")

	// ErrFrameCountOutOfRange is returned when more than 65535 frames are requested.
	ErrFrameCountOutOfRange = errors.New("container: frame count out of range")

	// ErrTooManyFrames is returned when appending beyond the header frame count.
	ErrTooManyFrames = errors.New("container: more frames than declared in header")

	// ErrFrameCountMismatch is returned when fewer frames than declared were appended.
	ErrFrameCountMismatch = errors.New("container: frame count does not match header")

	// ErrBadMarker is returned when a frame does not start with the FRM marker.
	ErrBadMarker = errors.New("container: frame marker mismatch")

	// ErrTruncated is returned when the container ends before the declared data.
	ErrTruncated = errors.New("container: truncated")

	// ErrTrailingData is returned when bytes follow the last declared frame.
	ErrTrailingData = errors.New("container: trailing data after last frame")
)

// FrameError attributes a failure to a single frame and field.
type FrameError struct {
	Frame int    // 1-based frame index
	Field string // e.g. "resolution", "payload", "artifact"
	Err   error
}

func (e *FrameError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("frame %d: %v", e.Frame, e.Err)
	}
	return fmt.Sprintf("frame %d %s: %v", e.Frame, e.Field, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// NewFrameError wraps err with the frame index and field that caused it.
func NewFrameError(frame int, field string, err error) error {
	return &FrameError{Frame: frame, Field: field, Err: err}
}
