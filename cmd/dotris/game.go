package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/dotris/debugui"
	debugui_ebiten "github.com/plus3/dotris/debugui/ebiten"
	"github.com/plus3/dotris/display"
	"github.com/plus3/dotris/engine"
)

// Game drives the scheduler from ebiten's update loop and shows the panel frame.
type Game struct {
	Scheduler *engine.Scheduler
	Screen    *display.System
	Renderer  *display.Renderer
	Timer     *debugui.FrameTimer
	// Imgui is nil unless the debug windows are enabled.
	Imgui *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	if g.Imgui != nil {
		g.Imgui.BeginFrame()
	}

	g.Scheduler.Once(float64(g.Timer.GetDeltaTime()))

	if g.Imgui != nil {
		g.Imgui.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, g.Screen.Frame)
	if g.Imgui != nil {
		g.Imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Imgui != nil {
		g.Imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.Renderer.Size(g.Screen.Frame)
}
