// Package hal is the viewer's contact point with the outside world: the
// rendering backends, the host loops that drive them, and keyboard input.
package hal

import (
	"errors"
	"strings"

	"ppmview/xform"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

var (
	ErrShaderCompileFailed = errors.New("hal: shader compile failed")
	ErrUniformNotFound     = errors.New("hal: uniform not found")
)

// UniformMVP is the frame matrix uniform. It is the only matrix uniform the
// renderers declare.
const UniformMVP = "MVP"

// Renderer displays one textured quad transformed by a matrix uniform.
type Renderer interface {
	UploadTexture(width, height int, rgb []byte) error
	SetUniformMatrix(name string, m xform.Mat4) error
	DrawQuad() error
}

// TextOverlay is implemented by renderers that can print status text over
// the frame.
type TextOverlay interface {
	DrawText(s string) error
}

// Client is driven by a host loop: Init once, then per frame every polled
// key event followed by one Frame.
type Client interface {
	Init(r Renderer) error
	// HandleKey reports whether the loop should stop.
	HandleKey(ev KeyEvent) (exit bool)
	Frame(r Renderer, aspect float32) error
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyW
	KeyS
	KeyA
	KeyD
	KeyE
	KeyQ
)

var keyNames = [...]string{
	KeyUnknown: "Unknown",
	KeyUp:      "Up",
	KeyDown:    "Down",
	KeyLeft:    "Left",
	KeyRight:   "Right",
	KeyEscape:  "Escape",
	KeyW:       "W",
	KeyS:       "S",
	KeyA:       "A",
	KeyD:       "D",
	KeyE:       "E",
	KeyQ:       "Q",
}

func (k KeyCode) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// ParseKey maps a key name (case-insensitive, "Esc" accepted) to its code.
func ParseKey(name string) (KeyCode, bool) {
	if strings.EqualFold(name, "esc") {
		return KeyEscape, true
	}
	for i, n := range keyNames {
		if i != int(KeyUnknown) && strings.EqualFold(n, name) {
			return KeyCode(i), true
		}
	}
	return KeyUnknown, false
}

// KeyEvent is a keyboard event. Press is false on release; Repeat is set for
// auto-repeat while a key is held.
type KeyEvent struct {
	Code   KeyCode
	Press  bool
	Repeat bool
}

func aspectOf(w, h int) float32 {
	if w <= 0 || h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}
