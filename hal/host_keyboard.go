//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var hostKeys = [...]struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyW, KeyW},
	{ebiten.KeyS, KeyS},
	{ebiten.KeyA, KeyA},
	{ebiten.KeyD, KeyD},
	{ebiten.KeyE, KeyE},
	{ebiten.KeyQ, KeyQ},
}

type hostKeyboard struct {
	buf []KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{buf: make([]KeyEvent, 0, len(hostKeys))}
}

// poll returns the transitions since the previous tick. Held keys produce no
// events.
func (k *hostKeyboard) poll() []KeyEvent {
	k.buf = k.buf[:0]
	for _, hk := range hostKeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			k.buf = append(k.buf, KeyEvent{Code: hk.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(hk.key) {
			k.buf = append(k.buf, KeyEvent{Code: hk.code, Press: false})
		}
	}
	return k.buf
}
