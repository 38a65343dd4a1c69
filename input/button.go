package input

import (
	"strconv"
	"strings"
)

// Button is a raw controller button index in the standard gamepad layout.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLB
	ButtonRB
	ButtonLT
	ButtonRT
	ButtonBack
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonHome
)

// ButtonCount is the number of buttons in the standard layout.
const ButtonCount = 17

var buttonNames = [ButtonCount]string{
	"A", "B", "X", "Y",
	"LB", "RB", "LT", "RT",
	"BACK", "START",
	"LEFT_STICK", "RIGHT_STICK",
	"D_PAD_UP", "D_PAD_DOWN", "D_PAD_LEFT", "D_PAD_RIGHT",
	"HOME",
}

func (b Button) String() string {
	if b < 0 || int(b) >= ButtonCount {
		return "BUTTON_" + strconv.Itoa(int(b))
	}
	return buttonNames[b]
}

// ButtonByName resolves a layout name such as "D_PAD_LEFT" (case-insensitive).
func ButtonByName(name string) (Button, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range buttonNames {
		if n == name {
			return Button(i), true
		}
	}
	return 0, false
}
