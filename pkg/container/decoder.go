package container

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Decoder reads a container frame by frame, the way the display firmware does:
// it tracks position and length and only checks the marker where a frame must
// begin. Payload bytes that happen to spell "FRM" are never treated as markers.
type Decoder struct {
	r      io.Reader
	header Header
	read   bool
	next   int
	frame  []byte
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Header reads the header on first call and returns it.
func (d *Decoder) Header() (Header, error) {
	if d.read {
		return d.header, nil
	}
	var raw [HeaderSize]byte
	if _, err := io.ReadFull(d.r, raw[:]); err != nil {
		return Header{}, readErr("header", err)
	}
	if err := d.header.UnmarshalBinary(raw[:]); err != nil {
		return Header{}, err
	}
	d.read = true
	d.frame = make([]byte, d.header.FrameStride())
	return d.header, nil
}

// Next returns the payload of the next frame. It returns io.EOF after the last
// declared frame. The returned slice is reused by the following call.
func (d *Decoder) Next() ([]byte, error) {
	h, err := d.Header()
	if err != nil {
		return nil, err
	}
	if d.next >= int(h.FrameCount) {
		return nil, io.EOF
	}
	index := d.next + 1
	if _, err := io.ReadFull(d.r, d.frame); err != nil {
		return nil, NewFrameError(index, "payload", readErr("frame", err))
	}
	if !bytes.Equal(d.frame[:MarkerSize], Marker[:]) {
		return nil, NewFrameError(index, "marker",
			fmt.Errorf("%w: got %q", ErrBadMarker, d.frame[:MarkerSize]))
	}
	d.next++
	return d.frame[MarkerSize:], nil
}

func readErr(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s", ErrTruncated, what)
	}
	return fmt.Errorf("%w: reading %s: %v", ErrIOFailure, what, err)
}

// Decoded is a fully decoded container.
type Decoded struct {
	Header Header
	Frames [][]byte
}

// Decode parses a whole container held in memory. Trailing bytes after the
// last declared frame are rejected.
func Decode(data []byte) (Decoded, error) {
	r := bytes.NewReader(data)
	d := NewDecoder(r)
	h, err := d.Header()
	if err != nil {
		return Decoded{}, err
	}

	out := Decoded{Header: h, Frames: make([][]byte, 0, h.FrameCount)}
	for {
		payload, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Decoded{}, err
		}
		out.Frames = append(out.Frames, bytes.Clone(payload))
	}

	if r.Len() > 0 {
		return Decoded{}, fmt.Errorf("%w: %d bytes", ErrTrailingData, r.Len())
	}
	return out, nil
}
