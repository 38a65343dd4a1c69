package sound

import (
	"github.com/plus3/dotris/display"
	"github.com/plus3/dotris/engine"
	"github.com/plus3/dotris/session"
)

// System turns what happened in each session this tick into cues.
type System struct {
	Source display.SnapshotSource
	Player Player

	screens map[int]session.Screen
}

func NewSystem(source display.SnapshotSource, player Player) *System {
	return &System{Source: source, Player: player, screens: make(map[int]session.Screen)}
}

func (s *System) Execute(frame *engine.UpdateFrame) {
	snaps := s.Source.Snapshots()
	seen := make(map[int]bool, len(snaps))
	for _, snap := range snaps {
		seen[snap.Controller] = true

		switch {
		case snap.ToppedOut:
			s.Player.Play(CueTopOut)
		case snap.LinesCleared >= 4:
			s.Player.Play(CueTetris)
		case snap.LinesCleared > 0:
			s.Player.Play(CueLines)
		}

		if prev, ok := s.screens[snap.Controller]; ok && prev == session.ScreenEnterName && snap.Screen == session.ScreenLeaderboard {
			s.Player.Play(CueHighscore)
		}
		s.screens[snap.Controller] = snap.Screen
	}
	for controller := range s.screens {
		if !seen[controller] {
			delete(s.screens, controller)
		}
	}
}
