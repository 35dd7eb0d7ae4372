package app

import (
	"ppmview/hal"
	"ppmview/xform"
)

// Action is the effect of a key event.
type Action uint8

const (
	ActionNone Action = iota
	ActionStep
	ActionExit
)

var keyDeltas = map[hal.KeyCode]xform.Delta{
	hal.KeyUp:    {TranslateY: xform.TranslateStep},
	hal.KeyDown:  {TranslateY: -xform.TranslateStep},
	hal.KeyRight: {TranslateX: xform.TranslateStep},
	hal.KeyLeft:  {TranslateX: -xform.TranslateStep},
	hal.KeyW:     {Scale: xform.ScaleStep},
	hal.KeyS:     {Scale: -xform.ScaleStep},
	hal.KeyA:     {Rotation: xform.RotationStep},
	hal.KeyD:     {Rotation: -xform.RotationStep},
	hal.KeyE:     {Shear: xform.ShearStep},
	hal.KeyQ:     {Shear: -xform.ShearStep},
}

// KeyAction maps a key event to its effect. Only the press transition acts;
// releases and auto-repeat map to ActionNone.
func KeyAction(ev hal.KeyEvent) (Action, xform.Delta) {
	if !ev.Press || ev.Repeat {
		return ActionNone, xform.Delta{}
	}
	if ev.Code == hal.KeyEscape {
		return ActionExit, xform.Delta{}
	}
	if d, ok := keyDeltas[ev.Code]; ok {
		return ActionStep, d
	}
	return ActionNone, xform.Delta{}
}
