package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/dotris/config"
	"github.com/plus3/dotris/debugui"
	debugui_ebiten "github.com/plus3/dotris/debugui/ebiten"
	"github.com/plus3/dotris/display"
	"github.com/plus3/dotris/engine"
	"github.com/plus3/dotris/highscore"
	"github.com/plus3/dotris/input"
	"github.com/plus3/dotris/input/gamepad"
	"github.com/plus3/dotris/preview"
	"github.com/plus3/dotris/session"
	"github.com/plus3/dotris/sound"
	"github.com/plus3/dotris/tetris"
)

// keyboardController is the controller index of the keyboard. It sorts after every
// gamepad, so gamepads keep the left half of the panel.
const keyboardController = 1000

func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	scale := flag.Int("scale", 12, "Pixels per dot in the window.")
	keyboard := flag.Bool("keyboard", true, "Play with the arrow keys as an extra controller.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece randomizer.")
	flag.BoolVar(&cfg.DebugUI, "debug", cfg.DebugUI, "Show the debug windows.")
	flag.StringVar(&cfg.PreviewAddr, "preview", cfg.PreviewAddr, "Address for the web preview, empty to disable.")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scores, closer := highscore.OpenTable(ctx, cfg.Highscore())
	defer closer.Close()

	mapping, err := session.ParseMapping(cfg.Buttons, session.DefaultMapping())
	if err != nil {
		log.Printf("[CONFIG] Ignoring DOTRIS_BUTTONS: %v", err)
	}

	var pollers gamepad.Multi
	pollers = append(pollers, &gamepad.Poller{})
	if *keyboard {
		pollers = append(pollers, &gamepad.Keyboard{Controller: keyboardController, Keys: gamepad.ArrowKeys()})
	}

	in := input.NewManager()
	sessions := session.NewManager(in, tetris.NewRandomizer(*seed), scores, mapping, cfg.MaxPlayers)
	screen := display.NewSystem(sessions)

	scheduler := engine.NewScheduler()
	scheduler.Register(&input.PollSystem{Poller: pollers, Sink: in})
	scheduler.Register(in)
	scheduler.Register(sessions)
	scheduler.Register(screen)

	if cfg.Sound {
		speaker := sound.NewManager()
		if err := speaker.Initialize(); err != nil {
			log.Printf("[SOUND] Audio disabled: %v", err)
		}
		defer speaker.Cleanup()
		scheduler.Register(sound.NewSystem(sessions, speaker))
	}

	if cfg.PreviewAddr != "" {
		hub := preview.NewHub(sessions, screen.Frame)
		defer hub.Close()
		scheduler.Register(hub)

		server := preview.NewServer(cfg.PreviewAddr, hub, scores)
		go func() {
			if err := server.Run(ctx); err != nil {
				log.Printf("[PREVIEW] Server stopped: %v", err)
			}
		}()
	}

	renderer := display.NewRenderer(*scale)
	game := &Game{
		Scheduler: scheduler,
		Screen:    screen,
		Renderer:  renderer,
		Timer:     debugui.NewFrameTimer(),
	}

	width, height := renderer.Size(screen.Frame)
	if cfg.DebugUI {
		game.Imgui = debugui_ebiten.NewImguiBackend("dotris", max(width, 1280), height+480)
		scheduler.Register(debugui.New(scheduler, sessions, in))
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("dotris")
	}
	ebiten.SetTPS(cfg.TicksPerSecond)

	log.Printf("Starting dotris at %d ticks per second", cfg.TicksPerSecond)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game stopped: %v", err)
	}
}
