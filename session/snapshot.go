package session

import (
	"fmt"

	"github.com/plus3/dotris/highscore"
	"github.com/plus3/dotris/tetris"
)

// Screen is the state machine layered over the simulation.
type Screen int

const (
	ScreenPlaying Screen = iota
	ScreenPaused
	ScreenGameOver
	ScreenEnterName
	ScreenLeaderboard
)

var screenNames = [...]string{"PLAYING", "PAUSED", "GAME_OVER", "ENTER_NAME", "LEADERBOARD"}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "UNKNOWN"
	}
	return screenNames[s]
}

func (s Screen) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Screen) UnmarshalText(text []byte) error {
	for i, n := range screenNames {
		if n == string(text) {
			*s = Screen(i)
			return nil
		}
	}
	return fmt.Errorf("unknown screen %q", text)
}

// PauseOption is an entry of the pause menu.
type PauseOption int

const (
	PauseResume PauseOption = iota
	PauseQuit
)

func (p PauseOption) String() string {
	if p == PauseQuit {
		return "QUIT"
	}
	return "RESUME"
}

func (p PauseOption) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PauseOption) UnmarshalText(text []byte) error {
	switch string(text) {
	case "RESUME":
		*p = PauseResume
	case "QUIT":
		*p = PauseQuit
	default:
		return fmt.Errorf("unknown pause option %q", text)
	}
	return nil
}

// PieceView is the renderer's view of a piece. Cells are absolute board cells for the
// active piece and origin-relative cells for the next piece.
type PieceView struct {
	Kind     tetris.Kind     `json:"kind"`
	Rotation int             `json:"rotation"`
	X        int             `json:"x"`
	Y        int             `json:"y"`
	Cells    [4]tetris.Block `json:"cells"`
}

// Snapshot is what a renderer sees of one session after a tick. It owns all of its
// slices and is never modified after the tick that built it.
type Snapshot struct {
	Controller int               `json:"controller"`
	Screen     Screen            `json:"screen"`
	Current    PieceView         `json:"current"`
	Next       PieceView         `json:"next"`
	Blocks     []tetris.Block    `json:"blocks"`
	Score      int               `json:"score"`
	Level      int               `json:"level"`
	Lines      int               `json:"lines"`
	GameOver   bool              `json:"gameOver"`
	Highscores []highscore.Entry `json:"highscores"`

	PauseSelection PauseOption `json:"pauseSelection"`
	Name           string      `json:"name,omitempty"`
	NameIndex      int         `json:"nameIndex"`

	LinesCleared int  `json:"linesCleared"`
	ToppedOut    bool `json:"toppedOut"`
}

func currentView(p tetris.Piece) PieceView {
	return PieceView{
		Kind:     p.Kind,
		Rotation: p.Rotation,
		X:        p.X,
		Y:        p.Y,
		Cells:    p.Cells(),
	}
}

func nextView(p tetris.Piece) PieceView {
	var cells [4]tetris.Block
	for i, o := range tetris.ShapeFor(p.Kind, p.Rotation) {
		cells[i] = tetris.Block{X: o.X, Y: o.Y}
	}
	return PieceView{Kind: p.Kind, Rotation: p.Rotation, Cells: cells}
}
