// Package texture decodes image files and uploads them as OpenGL textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Decode decodes image bytes. TGA files are handled by the built-in
// decoder (Go's image registry has no TGA support); everything else
// goes through image.Decode (PNG/JPEG/BMP/TIFF).
func Decode(data []byte, path string) (image.Image, error) {
	if strings.HasSuffix(strings.ToLower(path), ".tga") {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// Load decodes image bytes and uploads them as a 2D texture.
// Returns the texture id, or 0 and an error if decoding fails.
func Load(data []byte, path string) (uint32, error) {
	img, err := Decode(data, path)
	if err != nil {
		return 0, fmt.Errorf("decoding texture %s: %w", path, err)
	}

	pixels, w, h, channels := Flatten(img)
	if w == 0 || h == 0 {
		return 0, fmt.Errorf("texture %s has zero size", path)
	}
	return Upload(pixels, w, h, channels), nil
}

// Flatten converts a decoded image into a tightly packed pixel slice
// plus its dimensions and channel count. Grayscale images stay
// single-channel, JPEG YCbCr becomes 3-channel RGB, everything else is
// converted to 4-channel RGBA.
func Flatten(img image.Image) (pixels []byte, w, h, channels int) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		pixels = make([]byte, w*h)
		for y := 0; y < h; y++ {
			copy(pixels[y*w:(y+1)*w], src.Pix[y*src.Stride:y*src.Stride+w])
		}
		return pixels, w, h, 1

	case *image.YCbCr:
		pixels = make([]byte, 0, w*h*3)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, _ := src.At(x, y).RGBA()
				pixels = append(pixels, byte(r>>8), byte(g>>8), byte(bl>>8))
			}
		}
		return pixels, w, h, 3

	default:
		rgba := toRGBA(img)
		return rgba.Pix, w, h, 4
	}
}

// GLFormat maps a channel count to the matching OpenGL pixel format.
func GLFormat(channels int) uint32 {
	switch channels {
	case 1:
		return gl.RED
	case 3:
		return gl.RGB
	default:
		return gl.RGBA
	}
}

// Upload creates a 2D texture from packed pixel data with wrap-repeat
// and tri-linear mip-mapped filtering. Must run on the GL thread.
func Upload(pixels []byte, w, h, channels int) uint32 {
	format := GLFormat(channels)

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Single- and three-channel rows are not 4-byte aligned in general.
	if channels != 4 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	}

	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), int32(w), int32(h), 0,
		format, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	if channels != 4 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// toRGBA converts any image to *image.RGBA with a zero-origin bounds.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
