package display

import (
	"strconv"

	"github.com/plus3/dotris/engine"
	"github.com/plus3/dotris/session"
	"github.com/plus3/dotris/tetris"
)

const (
	// PlayerSpan is the horizontal room each player gets.
	PlayerSpan = 42
	fieldWidth = tetris.BoardWidth + 2
	panelGap   = 2
)

// SnapshotSource provides the snapshots of the current tick.
type SnapshotSource interface {
	Snapshots() []session.Snapshot
}

// Compose redraws f from snapshots. Players are laid out left to right in snapshot
// order; with no players a prompt is shown.
func Compose(f *Frame, snapshots []session.Snapshot) {
	f.Clear()
	if len(snapshots) == 0 {
		drawCentered(f, "PRESS", 7)
		drawCentered(f, "START", 15)
		return
	}
	for i, snap := range snapshots {
		drawPlayer(f, 1+i*PlayerSpan, snap)
	}
}

func drawCentered(f *Frame, text string, y int) {
	DrawText(f, text, (f.Width-TextWidth(text))/2, y)
}

func drawPlayer(f *Frame, x int, snap session.Snapshot) {
	if snap.Screen == session.ScreenLeaderboard {
		for i, e := range snap.Highscores {
			y := 2 + i*8
			DrawText(f, e.Name, x+1, y)
			DrawText(f, strconv.Itoa(e.Score), x+14, y)
		}
		return
	}

	drawField(f, x, snap)
	panel := x + fieldWidth + panelGap

	switch snap.Screen {
	case session.ScreenPlaying:
		drawNext(f, panel, snap.Next)
		DrawText(f, strconv.Itoa(snap.Score), panel, 8)
		DrawText(f, "L"+strconv.Itoa(snap.Level), panel, 14)
		DrawText(f, strconv.Itoa(snap.Lines), panel, 20)

	case session.ScreenPaused:
		DrawText(f, "PAUSE", panel, 1)
		resume, quit := " RESUME", " QUIT"
		if snap.PauseSelection == session.PauseQuit {
			quit = ">QUIT"
		} else {
			resume = ">RESUME"
		}
		DrawText(f, resume, panel, 8)
		DrawText(f, quit, panel, 14)

	case session.ScreenGameOver:
		DrawText(f, "GAME", panel, 1)
		DrawText(f, "OVER", panel, 7)
		DrawText(f, strconv.Itoa(snap.Score), panel, 14)

	case session.ScreenEnterName:
		DrawText(f, "NAME", panel, 1)
		DrawText(f, snap.Name, panel, 8)
		f.FillRect(panel+snap.NameIndex*glyphAdvance, 14, glyphWidth, 1)
		DrawText(f, strconv.Itoa(snap.Score), panel, 17)
	}
}

// drawField draws the walls and floor, the placed blocks and the active piece.
func drawField(f *Frame, x int, snap session.Snapshot) {
	f.FillRect(x, 0, fieldWidth, tetris.BoardHeight+1)
	f.ClearRect(x+1, 0, tetris.BoardWidth, tetris.BoardHeight)

	for _, b := range snap.Blocks {
		f.Set(x+1+b.X, b.Y)
	}
	if snap.Screen != session.ScreenGameOver {
		for _, c := range snap.Current.Cells {
			f.Set(x+1+c.X, c.Y)
		}
	}
}

func drawNext(f *Frame, x int, next session.PieceView) {
	for _, c := range next.Cells {
		// The I piece reaches one cell left of its origin.
		f.Set(x+1+c.X, 1+c.Y)
	}
}

// System recomposes Frame from Source once per tick.
type System struct {
	Source SnapshotSource
	Frame  *Frame
}

func NewSystem(source SnapshotSource) *System {
	return &System{Source: source, Frame: NewFrame(Width, Height)}
}

func (s *System) Execute(frame *engine.UpdateFrame) {
	Compose(s.Frame, s.Source.Snapshots())
}
