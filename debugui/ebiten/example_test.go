package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/dotris/debugui"
	debugui_ebiten "github.com/plus3/dotris/debugui/ebiten"
	"github.com/plus3/dotris/engine"
	"github.com/plus3/dotris/highscore"
	"github.com/plus3/dotris/input"
	"github.com/plus3/dotris/session"
	"github.com/plus3/dotris/tetris"
)

// Game implements ebiten.Game and draws the debug windows over the game.
type Game struct {
	scheduler *engine.Scheduler
	imgui     *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imgui.BeginFrame()

	g.scheduler.Once(1.0 / 60.0)

	// End ImGui frame after the deferred window renders ran
	g.imgui.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.imgui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("dotris debug", 1280, 720)

	in := input.NewManager()
	sessions := session.NewManager(in, tetris.NewRandomizer(1), highscore.NewTable(nil), session.DefaultMapping(), 0)

	scheduler := engine.NewScheduler()
	scheduler.Register(in)
	scheduler.Register(sessions)
	scheduler.Register(debugui.New(scheduler, sessions, in))

	if err := ebiten.RunGame(&Game{scheduler: scheduler, imgui: backend}); err != nil {
		panic(err)
	}
}
