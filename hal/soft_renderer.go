package hal

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"ppmview/xform"
)

// SoftRenderer is a software Renderer drawing into an RGBA image.
//
// Texture sampling is nearest-neighbour. Both triangle windings are filled.
type SoftRenderer struct {
	ClearColor color.RGBA

	dst *image.RGBA

	tex  []byte
	texW int
	texH int

	mvp  xform.Mat4
	tris []screenTriangle
}

// NewSoftRenderer creates a renderer with a w x h target.
func NewSoftRenderer(w, h int) *SoftRenderer {
	return &SoftRenderer{
		ClearColor: color.RGBA{A: 0xff},
		dst:        image.NewRGBA(image.Rect(0, 0, w, h)),
		mvp:        xform.Mat4Identity(),
	}
}

// Image returns the render target.
func (r *SoftRenderer) Image() *image.RGBA { return r.dst }

// Aspect is the target's width/height.
func (r *SoftRenderer) Aspect() float32 {
	b := r.dst.Bounds()
	return aspectOf(b.Dx(), b.Dy())
}

func (r *SoftRenderer) UploadTexture(width, height int, rgb []byte) error {
	if err := checkTexture(width, height, rgb); err != nil {
		return err
	}
	r.tex = append(r.tex[:0], rgb...)
	r.texW = width
	r.texH = height
	return nil
}

func (r *SoftRenderer) SetUniformMatrix(name string, m xform.Mat4) error {
	if name != UniformMVP {
		return fmt.Errorf("%w: %q", ErrUniformNotFound, name)
	}
	r.mvp = m
	return nil
}

// Clear fills the target with ClearColor.
func (r *SoftRenderer) Clear() {
	pix := r.dst.Pix
	c := r.ClearColor
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

func (r *SoftRenderer) DrawQuad() error {
	if r.tex == nil {
		return errors.New("hal: draw before texture upload")
	}
	b := r.dst.Bounds()
	r.tris = projectQuad(r.tris[:0], r.mvp, b.Dx(), b.Dy())
	for _, t := range r.tris {
		r.fillTriangle(t)
	}
	return nil
}

func (r *SoftRenderer) fillTriangle(t screenTriangle) {
	b := r.dst.Bounds()
	w, h := b.Dx(), b.Dy()

	area := edgeFn(t[0], t[1], t[2].X, t[2].Y)
	if area == 0 {
		return
	}
	invArea := 1 / area

	minX := clampInt(int(min(t[0].X, t[1].X, t[2].X)), 0, w-1)
	maxX := clampInt(int(max(t[0].X, t[1].X, t[2].X)), 0, w-1)
	minY := clampInt(int(min(t[0].Y, t[1].Y, t[2].Y)), 0, h-1)
	maxY := clampInt(int(max(t[0].Y, t[1].Y, t[2].Y)), 0, h-1)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			a0 := edgeFn(t[1], t[2], px, py) * invArea
			a1 := edgeFn(t[2], t[0], px, py) * invArea
			a2 := edgeFn(t[0], t[1], px, py) * invArea
			if a0 < 0 || a1 < 0 || a2 < 0 {
				continue
			}
			u := a0*t[0].U + a1*t[1].U + a2*t[2].U
			v := a0*t[0].V + a1*t[1].V + a2*t[2].V
			r.setPixel(x, y, r.sample(u, v))
		}
	}
}

func (r *SoftRenderer) sample(u, v float32) color.RGBA {
	tx := clampInt(int(u*float32(r.texW)), 0, r.texW-1)
	ty := clampInt(int(v*float32(r.texH)), 0, r.texH-1)
	i := (ty*r.texW + tx) * 3
	return color.RGBA{R: r.tex[i], G: r.tex[i+1], B: r.tex[i+2], A: 0xff}
}

func (r *SoftRenderer) setPixel(x, y int, c color.RGBA) {
	i := r.dst.PixOffset(x, y)
	r.dst.Pix[i+0] = c.R
	r.dst.Pix[i+1] = c.G
	r.dst.Pix[i+2] = c.B
	r.dst.Pix[i+3] = c.A
}

func edgeFn(a, b screenVertex, x, y float32) float32 {
	return (x-a.X)*(b.Y-a.Y) - (y-a.Y)*(b.X-a.X)
}

func checkTexture(width, height int, rgb []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("hal: invalid texture size %dx%d", width, height)
	}
	if len(rgb) != width*height*3 {
		return fmt.Errorf("hal: texture has %d bytes, want %d", len(rgb), width*height*3)
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
