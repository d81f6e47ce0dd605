package rgb565

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestPack(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint16
	}{
		{"black", 0, 0, 0, 0x0000},
		{"white", 255, 255, 255, 0xFFFF},
		{"red", 255, 0, 0, 0xF800},
		{"green", 0, 255, 0, 0x07E0},
		{"blue", 0, 0, 255, 0x001F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pack(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("expected %#04x, got %#04x", tt.want, got)
			}
		})
	}
}

func TestUnpack_Extremes(t *testing.T) {
	r, g, b := Unpack(0xFFFF)
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("expected white, got %d,%d,%d", r, g, b)
	}
	r, g, b = Unpack(0x0000)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("expected black, got %d,%d,%d", r, g, b)
	}
}

func TestFromImage_ByteOrder(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{B: 255, A: 255})

	swapped := FromImage(img, Swapped)
	if !bytes.Equal(swapped, []byte{0xF8, 0x00, 0x00, 0x1F}) {
		t.Errorf("swapped: got % x", swapped)
	}

	native := FromImage(img, Native)
	if !bytes.Equal(native, []byte{0x00, 0xF8, 0x1F, 0x00}) {
		t.Errorf("native: got % x", native)
	}
}

func TestToImage_RoundTrip(t *testing.T) {
	buf := []byte{0xF8, 0x00, 0x07, 0xE0, 0x00, 0x1F, 0xFF, 0xFF}
	img, err := ToImage(2, 2, buf, Swapped)
	if err != nil {
		t.Fatalf("ToImage failed: %v", err)
	}
	if got := FromImage(img, Swapped); !bytes.Equal(got, buf) {
		t.Errorf("expected % x, got % x", buf, got)
	}
}

func TestToImage_WrongSize(t *testing.T) {
	if _, err := ToImage(2, 2, make([]byte, 7), Swapped); err == nil {
		t.Error("expected error for wrong buffer size")
	}
}

func TestParseByteOrder(t *testing.T) {
	if o, err := ParseByteOrder("native"); err != nil || o != Native {
		t.Errorf("expected Native, got %v (%v)", o, err)
	}
	if o, err := ParseByteOrder(""); err != nil || o != Swapped {
		t.Errorf("expected Swapped default, got %v (%v)", o, err)
	}
	if _, err := ParseByteOrder("little"); err == nil {
		t.Error("expected error for unknown order")
	}
}
