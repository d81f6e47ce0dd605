// Package rgb565 converts between images and RGB565 pixel buffers.
package rgb565

import (
	"fmt"
	"image"
	"image/color"
)

// ByteOrder selects how each 16-bit pixel is laid out in the buffer.
type ByteOrder int

const (
	// Swapped stores the high byte first. This is what SPI panels such as the
	// ST7735 expect and what LVGL calls RGB565_SWAPPED.
	Swapped ByteOrder = iota
	// Native stores the low byte first.
	Native
)

// ParseByteOrder parses "swapped" or "native".
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "swapped", "":
		return Swapped, nil
	case "native":
		return Native, nil
	default:
		return Swapped, fmt.Errorf("unknown byte order %q", s)
	}
}

func (o ByteOrder) String() string {
	if o == Native {
		return "native"
	}
	return "swapped"
}

// Pack converts 8-bit RGB components to a 16-bit RGB565 value.
func Pack(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// Unpack expands an RGB565 value to 8-bit components, replicating the high
// bits into the low bits so that white stays white.
func Unpack(p uint16) (r, g, b uint8) {
	r5 := uint8(p>>11) & 0x1F
	g6 := uint8(p>>5) & 0x3F
	b5 := uint8(p) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// FromImage converts img to an RGB565 buffer of Dx*Dy*2 bytes.
func FromImage(img image.Image, order ByteOrder) []byte {
	b := img.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy()*2)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			p := Pack(c.R, c.G, c.B)
			if order == Swapped {
				out = append(out, byte(p>>8), byte(p))
			} else {
				out = append(out, byte(p), byte(p>>8))
			}
		}
	}
	return out
}

// ToImage converts an RGB565 buffer back into an image of width x height.
func ToImage(width, height int, buf []byte, order ByteOrder) (*image.RGBA, error) {
	if len(buf) != width*height*2 {
		return nil, fmt.Errorf("rgb565: buffer has %d bytes, want %d for %dx%d", len(buf), width*height*2, width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		var p uint16
		if order == Swapped {
			p = uint16(buf[2*i])<<8 | uint16(buf[2*i+1])
		} else {
			p = uint16(buf[2*i+1])<<8 | uint16(buf[2*i])
		}
		r, g, b := Unpack(p)
		img.Pix[4*i] = r
		img.Pix[4*i+1] = g
		img.Pix[4*i+2] = b
		img.Pix[4*i+3] = 0xFF
	}
	return img, nil
}
