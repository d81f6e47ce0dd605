package container

import (
	"fmt"
)

// Encoder accumulates a container in memory. It is not safe for concurrent use.
type Encoder struct {
	header   Header
	buf      []byte
	appended int
}

// NewEncoder starts a container with the given header. The header is written
// immediately and never changes afterwards.
func NewEncoder(h Header) *Encoder {
	buf := make([]byte, 0, h.Size())
	buf = h.appendTo(buf)
	return &Encoder{header: h, buf: buf}
}

// Header returns the header the encoder was created with.
func (e *Encoder) Header() Header {
	return e.header
}

// Append adds the next frame: the marker, then the payload verbatim.
func (e *Encoder) Append(payload []byte) error {
	if e.appended >= int(e.header.FrameCount) {
		return fmt.Errorf("%w: header declares %d", ErrTooManyFrames, e.header.FrameCount)
	}
	if len(payload) != e.header.FrameSize() {
		return fmt.Errorf("%w: frame %d has %d bytes, want %d",
			ErrPayloadLength, e.appended+1, len(payload), e.header.FrameSize())
	}
	e.buf = append(e.buf, Marker[:]...)
	e.buf = append(e.buf, payload...)
	e.appended++
	return nil
}

// Frames returns the number of frames appended so far.
func (e *Encoder) Frames() int {
	return e.appended
}

// Bytes returns the finished container. It fails unless exactly as many frames
// as the header declares have been appended.
func (e *Encoder) Bytes() ([]byte, error) {
	if e.appended != int(e.header.FrameCount) {
		return nil, fmt.Errorf("%w: appended %d, header declares %d",
			ErrFrameCountMismatch, e.appended, e.header.FrameCount)
	}
	return e.buf, nil
}

// Encode builds a complete container from res and the ordered frame payloads.
func Encode(res Resolution, frames [][]byte) ([]byte, error) {
	h, err := NewHeader(res, len(frames))
	if err != nil {
		return nil, err
	}
	enc := NewEncoder(h)
	for _, payload := range frames {
		if err := enc.Append(payload); err != nil {
			return nil, err
		}
	}
	return enc.Bytes()
}
