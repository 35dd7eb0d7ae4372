package hal

import (
	"errors"
	"image/color"
	"testing"

	"ppmview/xform"
)

// 2x2 texture: red, green / blue, white.
var quadrants = []byte{
	0xff, 0, 0, 0, 0xff, 0,
	0, 0, 0xff, 0xff, 0xff, 0xff,
}

func TestSoftRendererQuadrants(t *testing.T) {
	r := NewSoftRenderer(6, 4)
	if err := r.UploadTexture(2, 2, quadrants); err != nil {
		t.Fatalf("UploadTexture failed: %v", err)
	}
	if err := r.SetUniformMatrix(UniformMVP, xform.Compose(xform.DefaultState(), 1)); err != nil {
		t.Fatalf("SetUniformMatrix failed: %v", err)
	}
	r.Clear()
	if err := r.DrawQuad(); err != nil {
		t.Fatalf("DrawQuad failed: %v", err)
	}

	cases := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, color.RGBA{R: 0xff, A: 0xff}},
		{5, 0, color.RGBA{G: 0xff, A: 0xff}},
		{0, 3, color.RGBA{B: 0xff, A: 0xff}},
		{5, 3, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}
	for _, c := range cases {
		if got := r.Image().RGBAAt(c.x, c.y); got != c.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestSoftRendererTranslateLeavesClearRows(t *testing.T) {
	r := NewSoftRenderer(10, 10)
	if err := r.UploadTexture(2, 2, quadrants); err != nil {
		t.Fatal(err)
	}
	s := xform.DefaultState()
	s.TranslateY = 4
	if err := r.SetUniformMatrix(UniformMVP, xform.Compose(s, 1)); err != nil {
		t.Fatal(err)
	}
	r.Clear()
	if err := r.DrawQuad(); err != nil {
		t.Fatal(err)
	}
	bg := color.RGBA{A: 0xff}
	if got := r.Image().RGBAAt(5, 2); got == bg {
		t.Fatalf("row 2 should be textured")
	}
	if got := r.Image().RGBAAt(5, 8); got != bg {
		t.Fatalf("row 8 should be clear, got %v", got)
	}
}

func TestSoftRendererErrors(t *testing.T) {
	r := NewSoftRenderer(4, 4)
	if err := r.DrawQuad(); err == nil {
		t.Fatalf("DrawQuad without texture should fail")
	}
	if err := r.UploadTexture(2, 2, quadrants[:9]); err == nil {
		t.Fatalf("short texture should fail")
	}
	if err := r.UploadTexture(0, 2, nil); err == nil {
		t.Fatalf("zero width texture should fail")
	}
	err := r.SetUniformMatrix("Projection", xform.Mat4Identity())
	if !errors.Is(err, ErrUniformNotFound) {
		t.Fatalf("expected ErrUniformNotFound, got %v", err)
	}
}

func TestSoftRendererDrawText(t *testing.T) {
	r := NewSoftRenderer(120, 40)
	r.Clear()
	if err := r.DrawText("scale 1\nshear 0"); err != nil {
		t.Fatalf("DrawText failed: %v", err)
	}
	lit := 0
	for i := 0; i < len(r.Image().Pix); i += 4 {
		if r.Image().Pix[i] == hudColor.R {
			lit++
		}
	}
	if lit == 0 {
		t.Fatalf("no text pixels drawn")
	}
}
