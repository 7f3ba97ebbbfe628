package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestGLFormat(t *testing.T) {
	tests := []struct {
		channels int
		want     uint32
	}{
		{1, gl.RED},
		{3, gl.RGB},
		{4, gl.RGBA},
		{2, gl.RGBA}, // anything unexpected falls back to RGBA
	}
	for _, tt := range tests {
		if got := GLFormat(tt.channels); got != tt.want {
			t.Errorf("GLFormat(%d) = %#x, want %#x", tt.channels, got, tt.want)
		}
	}
}

func TestFlattenGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 10)
	}

	pixels, w, h, channels := Flatten(img)
	if channels != 1 {
		t.Fatalf("expected 1 channel, got %d", channels)
	}
	if w != 3 || h != 2 {
		t.Fatalf("expected 3x2, got %dx%d", w, h)
	}
	if len(pixels) != 6 {
		t.Fatalf("expected 6 bytes, got %d", len(pixels))
	}
	if pixels[4] != 40 {
		t.Errorf("expected pixel value 40, got %d", pixels[4])
	}
}

func TestFlattenYCbCr(t *testing.T) {
	img := image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio444)

	_, w, h, channels := Flatten(img)
	if channels != 3 {
		t.Fatalf("expected 3 channels, got %d", channels)
	}
	if w != 2 || h != 2 {
		t.Fatalf("expected 2x2, got %dx%d", w, h)
	}
}

func TestFlattenRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})

	pixels, w, h, channels := Flatten(img)
	if channels != 4 {
		t.Fatalf("expected 4 channels, got %d", channels)
	}
	if w != 2 || h != 1 {
		t.Fatalf("expected 2x1, got %dx%d", w, h)
	}
	if len(pixels) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(pixels))
	}
	if pixels[0] != 255 || pixels[3] != 255 {
		t.Errorf("expected red opaque first pixel, got %v", pixels[:4])
	}
}

func TestDecodePNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	img, err := Decode(buf.Bytes(), "tex.png")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("not an image"), "tex.png"); err == nil {
		t.Error("expected error for garbage data")
	}
}
