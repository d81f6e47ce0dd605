// Package container implements the RGB565 video binary format streamed by the
// display firmware.
//
// Layout (all integers big-endian):
//
//	width        2 bytes
//	height       2 bytes
//	frame_count  2 bytes
//	repeated frame_count times:
//	  marker     3 bytes "FRM"
//	  payload    width*height*2 bytes of RGB565 pixel data
package container

import (
	"fmt"
)

const (
	// HeaderSize is the size of the container header in bytes.
	HeaderSize = 6

	// MarkerSize is the size of the per-frame marker in bytes.
	MarkerSize = 3

	// BytesPerPixel is the size of one RGB565 pixel.
	BytesPerPixel = 2

	// MaxDimension is the largest width or height the header can carry.
	MaxDimension = 0xFFFF

	// MaxFrames is the largest frame count the header can carry.
	MaxFrames = 0xFFFF
)

// Marker precedes every frame payload.
var Marker = [MarkerSize]byte{0x46, 0x52, 0x4D}

// Resolution is the container-wide frame size in pixels.
type Resolution struct {
	Width  uint16
	Height uint16
}

// NewResolution validates w and h and returns a Resolution.
func NewResolution(w, h int) (Resolution, error) {
	if w < 0 || w > MaxDimension || h < 0 || h > MaxDimension {
		return Resolution{}, fmt.Errorf("%w: %dx%d", ErrResolutionOutOfRange, w, h)
	}
	return Resolution{Width: uint16(w), Height: uint16(h)}, nil
}

// FrameSize returns the payload size of one frame in bytes.
func (r Resolution) FrameSize() int {
	return int(r.Width) * int(r.Height) * BytesPerPixel
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Header is the fixed 6-byte preamble of a container.
type Header struct {
	Resolution
	FrameCount uint16
}

// NewHeader validates the frame count and returns a Header.
func NewHeader(res Resolution, frames int) (Header, error) {
	if frames < 0 || frames > MaxFrames {
		return Header{}, fmt.Errorf("%w: %d", ErrFrameCountOutOfRange, frames)
	}
	return Header{Resolution: res, FrameCount: uint16(frames)}, nil
}

// MarshalBinary encodes the header. Each field is split into its high and low
// byte explicitly so the layout does not depend on host endianness.
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, HeaderSize)
	return h.appendTo(b), nil
}

func (h Header) appendTo(b []byte) []byte {
	return append(b,
		byte((h.Width>>8)&0xFF), byte(h.Width&0xFF),
		byte((h.Height>>8)&0xFF), byte(h.Height&0xFF),
		byte((h.FrameCount>>8)&0xFF), byte(h.FrameCount&0xFF),
	)
}

// UnmarshalBinary decodes a header from the first HeaderSize bytes of data.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncated, HeaderSize, len(data))
	}
	h.Width = uint16(data[0])<<8 | uint16(data[1])
	h.Height = uint16(data[2])<<8 | uint16(data[3])
	h.FrameCount = uint16(data[4])<<8 | uint16(data[5])
	return nil
}

// ParseHeader decodes a header from data.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	err := h.UnmarshalBinary(data)
	return h, err
}

// FrameStride returns the number of bytes one marker plus payload occupies.
func (h Header) FrameStride() int {
	return MarkerSize + h.FrameSize()
}

// Size returns the total container size in bytes.
func (h Header) Size() int64 {
	return Size(h.Resolution, int(h.FrameCount))
}

// Size returns the container size for n frames at res.
func Size(res Resolution, n int) int64 {
	return HeaderSize + int64(n)*int64(MarkerSize+res.FrameSize())
}

// FrameRecord is one frame's payload with its 1-based position in the container.
type FrameRecord struct {
	Index   int
	Payload []byte
}
