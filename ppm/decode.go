package ppm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// bodyChunk caps the up-front body allocation. Larger bodies grow the buffer
// as bytes arrive, so a header alone cannot force a large allocation.
const bodyChunk = 1 << 20

// DecodeFile opens path and decodes it. Open failures and directories wrap
// ErrFileNotFound; the underlying os error stays matchable.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	defer f.Close()

	if fi, err := f.Stat(); err == nil && fi.IsDir() {
		return nil, fmt.Errorf("%w: %s: is a directory", ErrFileNotFound, path)
	}

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode reads one P6 image from r.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	h, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}

	want := int64(h.BodyBytes())
	var buf bytes.Buffer
	buf.Grow(int(min(want, bodyChunk)))
	if n, err := io.CopyN(&buf, br, want); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedBody, n, want)
		}
		return nil, fmt.Errorf("ppm: read body: %w", err)
	}
	body := buf.Bytes()

	img := &Image{Header: h, Pixels: make([]Pixel, h.Pixels())}
	ss := h.SampleBytes()
	sample := func(off int) int {
		if ss == 2 {
			return int(body[off])<<8 | int(body[off+1])
		}
		return int(body[off])
	}
	for i := range img.Pixels {
		off := i * 3 * ss
		img.Pixels[i] = Pixel{
			R: normalize(sample(off), h.MaxValue),
			G: normalize(sample(off+ss), h.MaxValue),
			B: normalize(sample(off+2*ss), h.MaxValue),
		}
	}
	return img, nil
}

// ReadHeader parses the magic tag, width, height and maxValue, and consumes
// the single whitespace byte that separates the header from the body.
func ReadHeader(br *bufio.Reader) (Header, error) {
	tag, err := readToken(br)
	if err != nil {
		return Header{}, fmt.Errorf("%w: format tag: %v", ErrMalformedHeader, err)
	}
	if tag != Magic {
		return Header{}, fmt.Errorf("%w: format tag %q, want %q", ErrMalformedHeader, tag, Magic)
	}

	var h Header
	fields := []struct {
		name string
		dst  *int
	}{
		{"width", &h.Width},
		{"height", &h.Height},
		{"maxValue", &h.MaxValue},
	}
	for _, f := range fields {
		tok, err := readToken(br)
		if err != nil {
			return Header{}, fmt.Errorf("%w: %s: %v", ErrMalformedHeader, f.name, err)
		}
		v, err := parsePositive(tok)
		if err != nil {
			return Header{}, fmt.Errorf("%w: %s %q: %v", ErrMalformedHeader, f.name, tok, err)
		}
		*f.dst = v
	}

	if h.MaxValue > MaxSampleValue {
		return Header{}, fmt.Errorf("%w: maxValue %d exceeds %d", ErrMalformedHeader, h.MaxValue, MaxSampleValue)
	}
	if h.Width > MaxPixels/h.Height {
		return Header{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrMalformedHeader, h.Width, h.Height, MaxPixels)
	}
	return h, nil
}

var errMissing = errors.New("missing")

// readToken skips whitespace and '#' comments, then returns the bytes up to
// the next whitespace byte. That terminating byte is consumed.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(tok) > 0 {
				return string(tok), nil
			}
			if errors.Is(err, io.EOF) {
				return "", errMissing
			}
			return "", err
		}
		switch {
		case isSpace(c):
			if len(tok) > 0 {
				return string(tok), nil
			}
		case c == '#' && len(tok) == 0:
			if _, err := br.ReadBytes('\n'); err != nil {
				if errors.Is(err, io.EOF) {
					return "", errMissing
				}
				return "", err
			}
		default:
			tok = append(tok, c)
		}
	}
}

func parsePositive(tok string) (int, error) {
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, errors.New("not a number")
		}
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, errors.New("not positive")
	}
	return v, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
