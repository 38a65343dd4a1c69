// Package term runs the game in a terminal: a tcell keyboard stands in for two
// gamepads and frames are drawn with half-block characters.
package term

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/dotris/input"
)

// Binding routes a key to a controller button.
type Binding struct {
	Controller int
	Button     input.Button
}

// KeyMap holds the bindings for rune keys and special keys.
type KeyMap struct {
	Runes map[rune]Binding
	Keys  map[tcell.Key]Binding
}

// TwoPlayers binds WASD, Q/E, R and Tab to controller 0 and the arrows, K/L, P and
// Enter to controller 1.
func TwoPlayers() KeyMap {
	return KeyMap{
		Runes: map[rune]Binding{
			'a': {0, input.ButtonDPadLeft},
			'd': {0, input.ButtonDPadRight},
			'w': {0, input.ButtonDPadUp},
			's': {0, input.ButtonDPadDown},
			'e': {0, input.ButtonA},
			'q': {0, input.ButtonB},
			'r': {0, input.ButtonY},
			'l': {1, input.ButtonA},
			'k': {1, input.ButtonB},
			'p': {1, input.ButtonY},
		},
		Keys: map[tcell.Key]Binding{
			tcell.KeyTab:   {0, input.ButtonStart},
			tcell.KeyLeft:  {1, input.ButtonDPadLeft},
			tcell.KeyRight: {1, input.ButtonDPadRight},
			tcell.KeyUp:    {1, input.ButtonDPadUp},
			tcell.KeyDown:  {1, input.ButtonDPadDown},
			tcell.KeyEnter: {1, input.ButtonStart},
		},
	}
}

func (m KeyMap) controllers() []int {
	seen := map[int]bool{}
	var out []int
	add := func(b Binding) {
		if !seen[b.Controller] {
			seen[b.Controller] = true
			out = append(out, b.Controller)
		}
	}
	for _, b := range m.Runes {
		add(b)
	}
	for _, b := range m.Keys {
		add(b)
	}
	return out
}

// Keyboard pushes key presses into a Sink. Terminals report no key releases, so every
// key event counts as the button being held for one tick.
type Keyboard struct {
	Screen tcell.Screen
	Sink   input.Sink
	Keys   KeyMap
	// Quit is called on Escape or Ctrl-C.
	Quit func()
}

// Connect announces one controller per player in the key map.
func (k *Keyboard) Connect() {
	for _, c := range k.Keys.controllers() {
		k.Sink.Record(input.Connected(c))
	}
}

// HandleEvent records a key event and reports whether the keyboard should keep running.
func (k *Keyboard) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		if k.Quit != nil {
			k.Quit()
		}
		return false
	case tcell.KeyRune:
		if b, ok := k.Keys.Runes[toLower(key.Rune())]; ok {
			k.Sink.Record(input.Press(b.Controller, b.Button, true))
		}
	default:
		if b, ok := k.Keys.Keys[key.Key()]; ok {
			k.Sink.Record(input.Press(b.Controller, b.Button, true))
		}
	}
	return true
}

// Run reads events until Escape, Ctrl-C or the screen is finalized.
func (k *Keyboard) Run() {
	k.Connect()
	for {
		ev := k.Screen.PollEvent()
		if ev == nil {
			return
		}
		if !k.HandleEvent(ev) {
			log.Println("[TERM] Quit requested")
			return
		}
	}
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
