// Package ppm decodes and encodes binary pixel-map (P6) images.
//
// Decoding materializes the whole image: a Header, a row-major slice of
// normalized Pixels, and on request the 8-bit RGB bytes a texture upload
// expects.
package ppm

import (
	"errors"
	"math"
)

// Magic is the format tag of a binary pixel map.
const Magic = "P6"

// MaxPixels bounds width*height. Viewer-scale images only.
const MaxPixels = 1 << 26

// MaxSampleValue is the largest maxValue the format allows.
const MaxSampleValue = 65535

var (
	ErrFileNotFound    = errors.New("ppm: file not found")
	ErrMalformedHeader = errors.New("ppm: malformed header")
	ErrTruncatedBody   = errors.New("ppm: truncated body")
)

// Header is the parsed text header of a P6 file.
type Header struct {
	Width    int
	Height   int
	MaxValue int
}

// Pixels returns width*height.
func (h Header) Pixels() int { return h.Width * h.Height }

// SampleBytes is 1 for maxValue <= 255 and 2 above.
func (h Header) SampleBytes() int {
	if h.MaxValue > 255 {
		return 2
	}
	return 1
}

// BodyBytes is the exact number of raw bytes that follow the header.
func (h Header) BodyBytes() int { return h.Pixels() * 3 * h.SampleBytes() }

// Pixel is a color with channels normalized to [0,1].
type Pixel struct {
	R, G, B float32
}

// Image is a decoded pixel map.
type Image struct {
	Header
	Pixels []Pixel
}

// RGB converts the normalized pixels to 8-bit RGB, three bytes per pixel in
// row-major order.
func (img *Image) RGB() []byte {
	out := make([]byte, len(img.Pixels)*3)
	for i, p := range img.Pixels {
		j := i * 3
		out[j+0] = toByte(p.R)
		out[j+1] = toByte(p.G)
		out[j+2] = toByte(p.B)
	}
	return out
}

func normalize(raw, max int) float32 {
	if raw >= max {
		return 1
	}
	return float32(raw) / float32(max)
}

func toByte(c float32) byte {
	v := math.Round(float64(c) * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
