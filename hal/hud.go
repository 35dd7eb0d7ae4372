package hal

import (
	"image"
	"image/color"
	"strings"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var hudColor = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}

// rgbaDisplay adapts an RGBA image to drivers.Displayer for tinyfont.
type rgbaDisplay struct {
	img *image.RGBA
}

var _ drivers.Displayer = rgbaDisplay{}

func (d rgbaDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d rgbaDisplay) SetPixel(x, y int16, c color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}).In(d.img.Bounds()) {
		return
	}
	d.img.SetRGBA(int(x), int(y), c)
}

func (d rgbaDisplay) Display() error { return nil }

// DrawText prints s in the top left corner of the target, one line per
// newline.
func (r *SoftRenderer) DrawText(s string) error {
	font := &proggy.TinySZ8pt7b
	adv := int16(font.GetYAdvance())
	d := rgbaDisplay{img: r.dst}
	y := adv
	for _, line := range strings.Split(s, "\n") {
		tinyfont.WriteLine(d, font, 2, y, line, hudColor)
		y += adv
	}
	return nil
}
