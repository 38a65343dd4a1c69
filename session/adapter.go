package session

import (
	"log"

	"github.com/plus3/dotris/highscore"
	"github.com/plus3/dotris/input"
	"github.com/plus3/dotris/tetris"
)

// NameLength is the number of letters in a highscore name.
const NameLength = 3

// Adapter is one player's session: a game plus the screens around it.
type Adapter struct {
	controller int
	mapping    Mapping
	edges      EdgeDetector
	rnd        *tetris.Randomizer
	scores     *highscore.Table

	game      *tetris.Game
	screen    Screen
	pauseSel  PauseOption
	name      [NameLength]byte
	nameIndex int
	quit      bool
}

// NewAdapter starts a session in the Playing screen with a fresh game.
func NewAdapter(controller int, rnd *tetris.Randomizer, scores *highscore.Table, mapping Mapping) *Adapter {
	a := &Adapter{
		controller: controller,
		mapping:    mapping,
		rnd:        rnd,
		scores:     scores,
		game:       tetris.NewGame(rnd),
	}
	a.resetName()
	return a
}

func (a *Adapter) Controller() int   { return a.controller }
func (a *Adapter) Screen() Screen    { return a.screen }
func (a *Adapter) Game() *tetris.Game { return a.game }

// Quit reports whether the player chose to leave.
func (a *Adapter) Quit() bool {
	return a.quit
}

// Close releases the game's resources.
func (a *Adapter) Close() {
	a.game.Close()
}

func (a *Adapter) resetName() {
	for i := range a.name {
		a.name[i] = 'A'
	}
	a.nameIndex = 0
}

// Tick runs one step for the debounced controller state and returns the snapshot
// for the renderer.
func (a *Adapter) Tick(state input.State) Snapshot {
	held := a.mapping.Held(state)
	return a.step(held)
}

func (a *Adapter) step(held Actions) Snapshot {
	pressed := a.edges.Update(held)
	var res tetris.TickResult

	switch a.screen {
	case ScreenPlaying:
		if pressed[ActionMenu] {
			a.screen = ScreenPaused
			a.pauseSel = PauseResume
			break
		}

		moveX := 0
		if pressed[ActionRight] {
			moveX = 1
		} else if pressed[ActionLeft] {
			moveX = -1
		}
		rotate := 0
		if pressed[ActionRotateCW] {
			rotate = 1
		} else if pressed[ActionRotateCCW] {
			rotate = -1
		}

		res = a.game.Tick(moveX, rotate, held[ActionSoftDrop], pressed[ActionHardDrop])
		if a.game.GameOver {
			log.Printf("[SESSION] Controller %d topped out with %d points", a.controller, a.game.Score())
			a.screen = ScreenGameOver
		}

	case ScreenPaused:
		switch {
		case pressed[ActionMenu]:
			a.screen = ScreenPlaying
		case pressed[ActionRotateCW]:
			if a.pauseSel == PauseQuit {
				a.quit = true
			} else {
				a.screen = ScreenPlaying
			}
		case pressed[ActionHardDrop]:
			a.pauseSel = PauseResume
		case pressed[ActionSoftDrop]:
			a.pauseSel = PauseQuit
		}

	case ScreenGameOver:
		if pressed[ActionRestart] {
			a.screen = ScreenEnterName
			a.resetName()
		}

	case ScreenEnterName:
		if pressed[ActionHardDrop] {
			a.name[a.nameIndex] = nextLetter(a.name[a.nameIndex])
		}
		if pressed[ActionSoftDrop] {
			a.name[a.nameIndex] = prevLetter(a.name[a.nameIndex])
		}
		if pressed[ActionRotateCW] {
			a.nameIndex++
			if a.nameIndex >= NameLength {
				a.scores.Submit(string(a.name[:]), a.game.Score())
				a.screen = ScreenLeaderboard
			}
		}

	case ScreenLeaderboard:
		switch {
		case pressed[ActionRestart]:
			a.game.Close()
			a.game = tetris.NewGame(a.rnd)
			a.screen = ScreenPlaying
		case pressed[ActionMenu]:
			a.quit = true
		}
	}

	return a.snapshot(res)
}

func (a *Adapter) snapshot(res tetris.TickResult) Snapshot {
	snap := Snapshot{
		Controller:     a.controller,
		Screen:         a.screen,
		Current:        currentView(a.game.Current()),
		Next:           nextView(a.game.Next()),
		Blocks:         a.game.Board().Blocks(),
		Score:          a.game.Score(),
		Level:          a.game.Level(),
		Lines:          a.game.Lines(),
		GameOver:       a.game.GameOver,
		Highscores:     a.scores.Entries(),
		PauseSelection: a.pauseSel,
		LinesCleared:   res.Cleared,
		ToppedOut:      res.ToppedOut,
	}
	if a.screen == ScreenEnterName {
		snap.Name = string(a.name[:])
		snap.NameIndex = a.nameIndex
	}
	return snap
}

func nextLetter(c byte) byte {
	if c >= 'Z' {
		return 'A'
	}
	return c + 1
}

func prevLetter(c byte) byte {
	if c <= 'A' {
		return 'Z'
	}
	return c - 1
}
