package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/user/vidbin/pkg/ports"
)

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(100, 100, color.White)
	if canvas == nil {
		t.Fatal("expected canvas to be created")
	}

	img := canvas.ToImage()
	bounds := img.Bounds()

	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Errorf("expected 100x100, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	rr, gg, bb, _ := img.At(50, 50).RGBA()
	if rr>>8 != 255 || gg>>8 != 255 || bb>>8 != 255 {
		t.Errorf("expected white background, got %d,%d,%d", rr>>8, gg>>8, bb>>8)
	}
}

func TestRenderer_EncodePNG(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 30, 20))
	data, err := r.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("expected 30x20, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderer_EncodeJPEG(t *testing.T) {
	r := New()

	data, err := r.EncodeImage(image.NewRGBA(image.Rect(0, 0, 8, 8)), ports.FormatJPEG, 80)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		t.Error("expected JPEG SOI marker")
	}
}

func TestRenderer_EncodeUnsupported(t *testing.T) {
	r := New()

	if _, err := r.EncodeImage(image.NewRGBA(image.Rect(0, 0, 1, 1)), ports.ImageFormat(99), 0); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestCanvas_DrawRect(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(10, 10, color.White)

	canvas.DrawRect(2, 2, 4, 4, color.RGBA{R: 255, A: 255})
	img := canvas.ToImage()

	rr, gg, bb, _ := img.At(3, 3).RGBA()
	if rr>>8 != 255 || gg>>8 != 0 || bb>>8 != 0 {
		t.Errorf("expected red inside rect, got %d,%d,%d", rr>>8, gg>>8, bb>>8)
	}
	rr, _, _, _ = img.At(8, 8).RGBA()
	if rr>>8 != 255 {
		t.Error("expected background outside rect")
	}
}

func TestCanvas_DrawImageScaled(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(8, 8, color.Black)

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{G: 255, A: 255})
	src.Set(1, 0, color.RGBA{G: 255, A: 255})
	src.Set(0, 1, color.RGBA{G: 255, A: 255})
	src.Set(1, 1, color.RGBA{G: 255, A: 255})

	canvas.DrawImageScaled(src, 0, 0, 8, 8)
	img := canvas.ToImage()

	_, g, _, _ := img.At(7, 7).RGBA()
	if g>>8 != 255 {
		t.Errorf("expected scaled image to cover canvas, got green=%d", g>>8)
	}
}

func TestCanvas_DrawText(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(60, 20, color.White)

	canvas.DrawText("#12", 30, 10, ports.TextStyle{FontSize: 12, Color: color.Black, Align: ports.AlignCenter})

	img := canvas.ToImage()
	dark := false
	for y := 0; y < 20 && !dark; y++ {
		for x := 0; x < 60; x++ {
			if rr, _, _, _ := img.At(x, y).RGBA(); rr>>8 < 128 {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Error("expected text pixels to be drawn")
	}
}
