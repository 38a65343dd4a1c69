// Package engine runs the game's systems once per fixed tick on a single goroutine.
package engine

// System is one step of the per-tick pipeline. Systems run in registration order and
// may keep their own state between ticks.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
