// Package session drives one tetris.Game per connected controller: it maps buttons to
// actions, turns held buttons into presses and layers the pause, game over, name entry
// and leaderboard screens over the simulation.
package session

import (
	"fmt"
	"strings"

	"github.com/plus3/dotris/input"
)

// Action is a logical player command.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionHardDrop
	ActionSoftDrop
	ActionRotateCW
	ActionRotateCCW
	ActionRestart
	ActionMenu
)

// ActionCount is the number of logical actions.
const ActionCount = 8

var actionNames = [ActionCount]string{
	"left", "right", "hardDrop", "softDrop", "rotateCW", "rotateCCW", "restart", "menu",
}

func (a Action) String() string {
	if a < 0 || int(a) >= ActionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ActionByName resolves an action name such as "hardDrop" (case-insensitive).
func ActionByName(name string) (Action, bool) {
	name = strings.TrimSpace(name)
	for i, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action(i), true
		}
	}
	return 0, false
}

// Actions holds one flag per action.
type Actions [ActionCount]bool

// Mapping assigns a raw button to each action. The drop buttons double as up and down
// in menus and rotate clockwise doubles as confirm.
type Mapping [ActionCount]input.Button

// DefaultMapping is the cabinet layout.
func DefaultMapping() Mapping {
	return Mapping{
		ActionLeft:      input.ButtonDPadLeft,
		ActionRight:     input.ButtonDPadRight,
		ActionHardDrop:  input.ButtonDPadUp,
		ActionSoftDrop:  input.ButtonDPadDown,
		ActionRotateCW:  input.ButtonA,
		ActionRotateCCW: input.ButtonB,
		ActionRestart:   input.ButtonY,
		ActionMenu:      input.ButtonStart,
	}
}

// ParseMapping applies comma separated action:BUTTON overrides to base, for example
// "rotateCW:X,restart:BACK".
func ParseMapping(text string, base Mapping) (Mapping, error) {
	m := base
	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		actionName, buttonName, ok := strings.Cut(field, ":")
		if !ok {
			return base, fmt.Errorf("mapping %q: want action:BUTTON", field)
		}
		action, ok := ActionByName(actionName)
		if !ok {
			return base, fmt.Errorf("mapping %q: unknown action %q", field, actionName)
		}
		button, ok := input.ButtonByName(buttonName)
		if !ok {
			return base, fmt.Errorf("mapping %q: unknown button %q", field, buttonName)
		}
		m[action] = button
	}
	return m, nil
}

// Held reports which actions have their button held in state.
func (m Mapping) Held(state input.State) Actions {
	var held Actions
	for i, b := range m {
		held[i] = state.IsHeld(b)
	}
	return held
}

// EdgeDetector turns held actions into presses: an action is pressed on the first tick
// it is held after a tick where it was not.
type EdgeDetector struct {
	last Actions
}

// Update records held as the current tick and returns the actions that went down.
func (d *EdgeDetector) Update(held Actions) Actions {
	var pressed Actions
	for i := range held {
		pressed[i] = held[i] && !d.last[i]
	}
	d.last = held
	return pressed
}
