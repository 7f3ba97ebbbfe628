package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	tgaTypeUncompressed = 2  // uncompressed true-color
	tgaTypeRLE          = 10 // RLE compressed true-color
)

// DecodeTGA decodes a TGA image. Supports uncompressed true-color
// (type 2) and RLE compressed (type 10) files at 24 or 32 bpp.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != tgaTypeUncompressed && imageType != tgaTypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}
	pixelData := data[offset:]

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bytesPerPixel := bpp / 8

	// Bit 5 of the descriptor means rows are stored top-to-bottom.
	topToBottom := (descriptor & 0x20) != 0

	setPixel := func(idx int, c color.RGBA) {
		x := idx % width
		y := idx / width
		if !topToBottom {
			y = height - 1 - y
		}
		img.SetRGBA(x, y, c)
	}

	readPixel := func(at int) color.RGBA {
		c := color.RGBA{B: pixelData[at], G: pixelData[at+1], R: pixelData[at+2], A: 255}
		if bytesPerPixel == 4 {
			c.A = pixelData[at+3]
		}
		return c
	}

	pixelCount := width * height

	if imageType == tgaTypeUncompressed {
		if len(pixelData) < pixelCount*bytesPerPixel {
			return nil, fmt.Errorf("TGA pixel data truncated")
		}
		for i := 0; i < pixelCount; i++ {
			setPixel(i, readPixel(i*bytesPerPixel))
		}
		return img, nil
	}

	// RLE packets: high bit set means repeat one pixel, clear means raw run.
	pixelIdx := 0
	dataIdx := 0
	for pixelIdx < pixelCount && dataIdx < len(pixelData) {
		packet := pixelData[dataIdx]
		dataIdx++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if dataIdx+bytesPerPixel > len(pixelData) {
				break
			}
			c := readPixel(dataIdx)
			dataIdx += bytesPerPixel
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				setPixel(pixelIdx, c)
				pixelIdx++
			}
		} else {
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				if dataIdx+bytesPerPixel > len(pixelData) {
					break
				}
				setPixel(pixelIdx, readPixel(dataIdx))
				dataIdx += bytesPerPixel
				pixelIdx++
			}
		}
	}

	return img, nil
}
