//go:build cgo

package hal

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ppmview/xform"
)

// RunWindow opens a desktop window and drives c until it requests exit or the
// window closes. It blocks until then.
func RunWindow(cfg WindowConfig, c Client) error {
	r, err := newGPURenderer()
	if err != nil {
		return err
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	g := &hostGame{c: c, r: r, kbd: newHostKeyboard()}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	c      Client
	r      *gpuRenderer
	kbd    *hostKeyboard
	inited bool
	err    error
}

func (g *hostGame) Update() error {
	if g.err != nil {
		return g.err
	}
	if !g.inited {
		if err := g.c.Init(g.r); err != nil {
			return err
		}
		g.inited = true
	}
	for _, ev := range g.kbd.poll() {
		if g.c.HandleKey(ev) {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if !g.inited || g.err != nil {
		return
	}
	g.r.screen = screen
	defer func() { g.r.screen = nil }()

	b := screen.Bounds()
	if err := g.c.Frame(g.r, aspectOf(b.Dx(), b.Dy())); err != nil {
		g.err = err
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

const quadShaderSrc = `//kage:unit pixels

package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return imageSrc0At(srcPos)
}
`

// gpuRenderer draws through ebiten. The quad is transformed and clipped on
// the CPU; the Kage shader only samples the texture.
type gpuRenderer struct {
	shader *ebiten.Shader
	tex    *ebiten.Image
	texW   int
	texH   int
	mvp    xform.Mat4

	// screen is only set while a frame is being drawn.
	screen *ebiten.Image

	tris     []screenTriangle
	vertices []ebiten.Vertex
	indices  []uint16
}

func newGPURenderer() (*gpuRenderer, error) {
	s, err := ebiten.NewShader([]byte(quadShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShaderCompileFailed, err)
	}
	return &gpuRenderer{shader: s, mvp: xform.Mat4Identity()}, nil
}

func (r *gpuRenderer) UploadTexture(width, height int, rgb []byte) error {
	if err := checkTexture(width, height, rgb); err != nil {
		return err
	}
	pix := make([]byte, width*height*4)
	for i, j := 0, 0; i+2 < len(rgb); i, j = i+3, j+4 {
		pix[j+0] = rgb[i+0]
		pix[j+1] = rgb[i+1]
		pix[j+2] = rgb[i+2]
		pix[j+3] = 0xff
	}
	if r.tex != nil {
		r.tex.Deallocate()
	}
	r.tex = ebiten.NewImage(width, height)
	r.tex.WritePixels(pix)
	r.texW = width
	r.texH = height
	return nil
}

func (r *gpuRenderer) SetUniformMatrix(name string, m xform.Mat4) error {
	if name != UniformMVP {
		return fmt.Errorf("%w: %q", ErrUniformNotFound, name)
	}
	r.mvp = m
	return nil
}

func (r *gpuRenderer) DrawQuad() error {
	if r.screen == nil {
		return errors.New("hal: draw outside of a frame")
	}
	if r.tex == nil {
		return errors.New("hal: draw before texture upload")
	}
	b := r.screen.Bounds()
	r.tris = projectQuad(r.tris[:0], r.mvp, b.Dx(), b.Dy())
	if len(r.tris) == 0 {
		return nil
	}

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	tw, th := float32(r.texW), float32(r.texH)
	for _, t := range r.tris {
		for _, v := range t {
			r.indices = append(r.indices, uint16(len(r.vertices)))
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   v.X,
				DstY:   v.Y,
				SrcX:   v.U * tw,
				SrcY:   v.V * th,
				ColorR: 1,
				ColorG: 1,
				ColorB: 1,
				ColorA: 1,
			})
		}
	}

	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Images[0] = r.tex
	r.screen.DrawTrianglesShader(r.vertices, r.indices, r.shader, op)
	return nil
}

func (r *gpuRenderer) DrawText(s string) error {
	if r.screen == nil {
		return errors.New("hal: draw outside of a frame")
	}
	ebitenutil.DebugPrint(r.screen, s)
	return nil
}
