package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/dotris/config"
	"github.com/plus3/dotris/display"
	"github.com/plus3/dotris/engine"
	"github.com/plus3/dotris/highscore"
	"github.com/plus3/dotris/input"
	"github.com/plus3/dotris/preview"
	"github.com/plus3/dotris/session"
	"github.com/plus3/dotris/sound"
	"github.com/plus3/dotris/term"
	"github.com/plus3/dotris/tetris"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	logPath := flag.String("log", "dotris-term.log", "File that receives the log while the screen is in use.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece randomizer.")
	flag.StringVar(&cfg.PreviewAddr, "preview", cfg.PreviewAddr, "Address for the web preview, empty to disable.")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	if err := run(cfg, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "dotris-term: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, seed uint64) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	scores, closer := highscore.OpenTable(ctx, cfg.Highscore())
	defer closer.Close()

	mapping, err := session.ParseMapping(cfg.Buttons, session.DefaultMapping())
	if err != nil {
		log.Printf("[CONFIG] Ignoring DOTRIS_BUTTONS: %v", err)
	}

	in := input.NewManager()
	sessions := session.NewManager(in, tetris.NewRandomizer(seed), scores, mapping, cfg.MaxPlayers)
	panel := display.NewSystem(sessions)

	scheduler := engine.NewScheduler()
	scheduler.Register(in)
	scheduler.Register(sessions)
	scheduler.Register(panel)
	scheduler.Register(&term.Renderer{Screen: screen, Frame: panel.Frame, Source: sessions})

	if cfg.Sound {
		speaker := sound.NewManager()
		if err := speaker.Initialize(); err != nil {
			log.Printf("[SOUND] Audio disabled: %v", err)
		}
		defer speaker.Cleanup()
		scheduler.Register(sound.NewSystem(sessions, speaker))
	}

	if cfg.PreviewAddr != "" {
		hub := preview.NewHub(sessions, panel.Frame)
		defer hub.Close()
		scheduler.Register(hub)

		server := preview.NewServer(cfg.PreviewAddr, hub, scores)
		go func() {
			if err := server.Run(ctx); err != nil {
				log.Printf("[PREVIEW] Server stopped: %v", err)
			}
		}()
	}

	keyboard := &term.Keyboard{Screen: screen, Sink: in, Keys: term.TwoPlayers(), Quit: cancel}
	go keyboard.Run()

	log.Printf("Starting dotris-term at %d ticks per second", cfg.TicksPerSecond)
	scheduler.Run(ctx, cfg.TickInterval())
	log.Println("Scheduler stopped")
	return nil
}
