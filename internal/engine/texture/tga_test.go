package texture

import (
	"image/color"
	"testing"
)

// tgaHeader builds an 18-byte TGA header with no ID field.
func tgaHeader(imageType byte, width, height, bpp int, descriptor byte) []byte {
	h := make([]byte, 18)
	h[2] = imageType
	h[12] = byte(width)
	h[13] = byte(width >> 8)
	h[14] = byte(height)
	h[15] = byte(height >> 8)
	h[16] = byte(bpp)
	h[17] = descriptor
	return h
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// 2x1, 24bpp, top-to-bottom. Pixels stored BGR.
	data := tgaHeader(tgaTypeUncompressed, 2, 1, 24, 0x20)
	data = append(data,
		0, 0, 255, // red
		255, 0, 0, // blue
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}

	want0 := color.RGBA{R: 255, A: 255}
	if got := img.At(0, 0); got != want0 {
		t.Errorf("pixel (0,0) = %v, want %v", got, want0)
	}
	want1 := color.RGBA{B: 255, A: 255}
	if got := img.At(1, 0); got != want1 {
		t.Errorf("pixel (1,0) = %v, want %v", got, want1)
	}
}

func TestDecodeTGABottomUp(t *testing.T) {
	// 1x2, 24bpp, bottom-to-top storage (descriptor bit 5 clear):
	// the first stored row lands at the image bottom.
	data := tgaHeader(tgaTypeUncompressed, 1, 2, 24, 0)
	data = append(data,
		0, 255, 0, // green, stored first -> bottom row (y=1)
		0, 0, 255, // red, stored second -> top row (y=0)
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got := (color.RGBA{R: 255, A: 255}); img.At(0, 0) != got {
		t.Errorf("pixel (0,0) = %v, want %v", img.At(0, 0), got)
	}
	if got := (color.RGBA{G: 255, A: 255}); img.At(0, 1) != got {
		t.Errorf("pixel (0,1) = %v, want %v", img.At(0, 1), got)
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 4x1, 32bpp, top-to-bottom. One RLE packet repeating a single
	// pixel 3 times, then a raw packet with 1 pixel.
	data := tgaHeader(tgaTypeRLE, 4, 1, 32, 0x20)
	data = append(data,
		0x82, 0, 0, 255, 255, // repeat red 3x
		0x00, 255, 0, 0, 128, // one raw blue, half alpha
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	red := color.RGBA{R: 255, A: 255}
	for x := 0; x < 3; x++ {
		if img.At(x, 0) != red {
			t.Errorf("pixel (%d,0) = %v, want %v", x, img.At(x, 0), red)
		}
	}
	blue := color.RGBA{B: 255, A: 128}
	if img.At(3, 0) != blue {
		t.Errorf("pixel (3,0) = %v, want %v", img.At(3, 0), blue)
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte{1, 2, 3}},
		{"color mapped", func() []byte {
			h := tgaHeader(tgaTypeUncompressed, 1, 1, 24, 0)
			h[1] = 1
			return h
		}()},
		{"bad type", tgaHeader(3, 1, 1, 24, 0)},
		{"bad depth", tgaHeader(tgaTypeUncompressed, 1, 1, 16, 0)},
		{"truncated pixels", append(tgaHeader(tgaTypeUncompressed, 2, 2, 24, 0), 1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}
