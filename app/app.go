// Package app is the image viewer: it owns the decoded texture and the
// interaction state, and implements hal.Client for the host loops.
package app

import (
	"fmt"

	"ppmview/hal"
	"ppmview/ppm"
	"ppmview/xform"
)

// Config holds viewer display options.
type Config struct {
	// HUD prints the interaction state over the image when the renderer
	// supports text.
	HUD bool
}

// Viewer displays one image under keyboard-driven transforms.
type Viewer struct {
	cfg Config
	log hal.Logger

	hdr ppm.Header
	rgb []byte

	state xform.State
	exit  bool
}

// New prepares img for upload. The viewer keeps only the 8-bit bytes.
func New(img *ppm.Image, log hal.Logger, cfg Config) *Viewer {
	if log == nil {
		log = hal.NopLogger{}
	}
	return &Viewer{
		cfg:   cfg,
		log:   log,
		hdr:   img.Header,
		rgb:   img.RGB(),
		state: xform.DefaultState(),
	}
}

// State returns the current interaction state.
func (v *Viewer) State() xform.State { return v.state }

// ExitRequested reports whether Escape has been pressed.
func (v *Viewer) ExitRequested() bool { return v.exit }

func (v *Viewer) Init(r hal.Renderer) error {
	if err := r.UploadTexture(v.hdr.Width, v.hdr.Height, v.rgb); err != nil {
		return fmt.Errorf("app: upload texture: %w", err)
	}
	v.log.WriteLineString(fmt.Sprintf("app: texture %dx%d uploaded", v.hdr.Width, v.hdr.Height))
	return nil
}

func (v *Viewer) HandleKey(ev hal.KeyEvent) bool {
	switch act, d := KeyAction(ev); act {
	case ActionExit:
		v.exit = true
	case ActionStep:
		v.state.Apply(d)
	}
	return v.exit
}

func (v *Viewer) Frame(r hal.Renderer, aspect float32) error {
	mvp := xform.Compose(v.state, aspect)
	if err := r.SetUniformMatrix(hal.UniformMVP, mvp); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := r.DrawQuad(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if !v.cfg.HUD {
		return nil
	}
	if o, ok := r.(hal.TextOverlay); ok {
		return o.DrawText(v.Status())
	}
	return nil
}

// Status is the HUD text.
func (v *Viewer) Status() string {
	s := v.state
	return fmt.Sprintf("scale %.1f  rot %.3f\ntx %.1f  ty %.1f  shear %.1f",
		s.ScaleValue, s.RotationValue, s.TranslateX, s.TranslateY, s.ShearValue)
}
