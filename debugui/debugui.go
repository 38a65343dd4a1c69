// Package debugui provides Dear ImGui windows for inspecting a running cabinet:
// scheduler timings, sessions and controller input.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/dotris/engine"
)

// Window is something that draws ImGui widgets once per frame.
type Window interface {
	Render(deltaTime float32)
}

// InputState tracks whether ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System defers every window's render to the end of the tick, after the sessions
// have produced their snapshots.
type System struct {
	Windows    []Window
	InputState InputState
}

func (s *System) Add(w Window) {
	s.Windows = append(s.Windows, w)
}

// Execute updates the input state and queues all windows for rendering.
func (s *System) Execute(frame *engine.UpdateFrame) {
	io := imgui.CurrentIO()
	s.InputState.WantCaptureMouse = io.WantCaptureMouse()
	s.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	dt := float32(frame.DeltaTime)
	for _, w := range s.Windows {
		frame.Commands.Defer(func() { w.Render(dt) })
	}
}
