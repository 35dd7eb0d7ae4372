package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"ppmview/ppm"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input image (.png, .jpg, .gif, .bmp, .webp).")
		outPath = flag.String("out", "", "Output .ppm file.")
		pattern = flag.String("pattern", "", "gradient|checker (instead of -in).")
		width   = flag.Int("w", 256, "Pattern width.")
		height  = flag.Int("h", 256, "Pattern height.")
		maxSide = flag.Int("max", 0, "Downsize so neither side exceeds this (0 keeps the size).")
	)
	flag.Parse()

	if *outPath == "" || (*inPath == "") == (*pattern == "") {
		fatalf("usage: mkppm -in in.png -out out.ppm [-max 1024]\n       mkppm -pattern gradient|checker [-w 256 -h 256] -out out.ppm")
	}

	var (
		img image.Image
		err error
	)
	if *inPath != "" {
		img, err = load(*inPath)
		if err != nil {
			fatalf("load: %v", err)
		}
	} else {
		img, err = generate(*pattern, *width, *height)
		if err != nil {
			fatalf("pattern: %v", err)
		}
	}

	img = fit(img, *maxSide)

	if err := write(*outPath, img); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func write(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ppm.Encode(out, img); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func generate(name string, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("bad size %dx%d", w, h)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	switch strings.ToLower(name) {
	case "gradient":
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetNRGBA(x, y, color.NRGBA{
					R: uint8(x * 255 / max(w-1, 1)),
					G: uint8(y * 255 / max(h-1, 1)),
					B: 0x80,
					A: 0xff,
				})
			}
		}
	case "checker":
		cell := max(min(w, h)/8, 1)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.NRGBA{A: 0xff}
				if (x/cell+y/cell)%2 == 0 {
					c.R, c.G, c.B = 0xff, 0xff, 0xff
				}
				img.SetNRGBA(x, y, c)
			}
		}
	default:
		return nil, fmt.Errorf("unknown pattern: %s", name)
	}
	return img, nil
}

// fit scales img down with Catmull-Rom so that neither side exceeds maxSide.
func fit(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	if maxSide <= 0 || (b.Dx() <= maxSide && b.Dy() <= maxSide) {
		return img
	}
	w, h := b.Dx(), b.Dy()
	if w >= h {
		h = max(h*maxSide/w, 1)
		w = maxSide
	} else {
		w = max(w*maxSide/h, 1)
		h = maxSide
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
