// Package gamepad feeds ebiten's native gamepad and keyboard state into the debouncer.
// Pollers must be called from inside ebiten's Update, where inpututil is valid.
package gamepad

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/dotris/input"
)

var standardButtons = [input.ButtonCount]ebiten.StandardGamepadButton{
	input.ButtonA:          ebiten.StandardGamepadButtonRightBottom,
	input.ButtonB:          ebiten.StandardGamepadButtonRightRight,
	input.ButtonX:          ebiten.StandardGamepadButtonRightLeft,
	input.ButtonY:          ebiten.StandardGamepadButtonRightTop,
	input.ButtonLB:         ebiten.StandardGamepadButtonFrontTopLeft,
	input.ButtonRB:         ebiten.StandardGamepadButtonFrontTopRight,
	input.ButtonLT:         ebiten.StandardGamepadButtonFrontBottomLeft,
	input.ButtonRT:         ebiten.StandardGamepadButtonFrontBottomRight,
	input.ButtonBack:       ebiten.StandardGamepadButtonCenterLeft,
	input.ButtonStart:      ebiten.StandardGamepadButtonCenterRight,
	input.ButtonLeftStick:  ebiten.StandardGamepadButtonLeftStick,
	input.ButtonRightStick: ebiten.StandardGamepadButtonRightStick,
	input.ButtonDPadUp:     ebiten.StandardGamepadButtonLeftTop,
	input.ButtonDPadDown:   ebiten.StandardGamepadButtonLeftBottom,
	input.ButtonDPadLeft:   ebiten.StandardGamepadButtonLeftLeft,
	input.ButtonDPadRight:  ebiten.StandardGamepadButtonLeftRight,
	input.ButtonHome:       ebiten.StandardGamepadButtonCenterCenter,
}

// Poller reports connected gamepads with a standard layout. Controller indices are
// ebiten gamepad ids offset by Base.
type Poller struct {
	Base int

	ids       []ebiten.GamepadID
	connected []ebiten.GamepadID
}

func (p *Poller) controller(id ebiten.GamepadID) int {
	return p.Base + int(id)
}

func (p *Poller) Poll(sink input.Sink) {
	for _, id := range p.ids {
		if inpututil.IsGamepadJustDisconnected(id) {
			sink.Record(input.Disconnected(p.controller(id)))
		}
	}

	p.connected = inpututil.AppendJustConnectedGamepadIDs(p.connected[:0])
	for _, id := range p.connected {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			log.Printf("[INPUT] Gamepad %d (%s) has no standard layout, ignoring", id, ebiten.GamepadName(id))
			continue
		}
		sink.Record(input.Connected(p.controller(id)))
	}

	p.ids = ebiten.AppendGamepadIDs(p.ids[:0])
	for _, id := range p.ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b, sb := range standardButtons {
			if !ebiten.IsStandardGamepadButtonPressed(id, sb) {
				continue
			}
			clicked := inpututil.IsStandardGamepadButtonJustPressed(id, sb)
			sink.Record(input.Press(p.controller(id), input.Button(b), clicked))
		}
	}
}

// KeyMap binds keyboard keys to buttons for one keyboard player.
type KeyMap map[ebiten.Key]input.Button

// ArrowKeys is the default keyboard layout: arrows for the d-pad, Z/X rotate,
// R restarts and Escape opens the menu.
func ArrowKeys() KeyMap {
	return KeyMap{
		ebiten.KeyArrowLeft:  input.ButtonDPadLeft,
		ebiten.KeyArrowRight: input.ButtonDPadRight,
		ebiten.KeyArrowUp:    input.ButtonDPadUp,
		ebiten.KeyArrowDown:  input.ButtonDPadDown,
		ebiten.KeyX:          input.ButtonA,
		ebiten.KeyZ:          input.ButtonB,
		ebiten.KeyR:          input.ButtonY,
		ebiten.KeyEscape:     input.ButtonStart,
	}
}

// Keyboard presents the keyboard as one always-connected controller, for development
// without a gamepad.
type Keyboard struct {
	Controller int
	Keys       KeyMap

	announced bool
}

func (k *Keyboard) Poll(sink input.Sink) {
	if !k.announced {
		sink.Record(input.Connected(k.Controller))
		k.announced = true
	}
	for key, button := range k.Keys {
		if ebiten.IsKeyPressed(key) {
			sink.Record(input.Press(k.Controller, button, inpututil.IsKeyJustPressed(key)))
		}
	}
}

// Multi polls several sources in order.
type Multi []input.Poller

func (m Multi) Poll(sink input.Sink) {
	for _, p := range m {
		p.Poll(sink)
	}
}
