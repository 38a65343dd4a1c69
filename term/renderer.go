package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/dotris/display"
	"github.com/plus3/dotris/engine"
)

var (
	dotStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer draws the composed frame, two dot rows per terminal row, and a status line
// per player underneath.
type Renderer struct {
	Screen tcell.Screen
	Frame  *display.Frame
	Source display.SnapshotSource
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	}
	return ' '
}

func (r *Renderer) Execute(frame *engine.UpdateFrame) {
	r.Draw()
}

func (r *Renderer) Draw() {
	r.Screen.Clear()

	f := r.Frame
	rows := (f.Height + 1) / 2
	for ty := range rows {
		for x := range f.Width {
			ch := halfBlock(f.At(x, ty*2), f.At(x, ty*2+1))
			r.Screen.SetContent(x, ty, ch, nil, dotStyle)
		}
	}

	y := rows + 1
	if r.Source != nil {
		for _, snap := range r.Source.Snapshots() {
			line := fmt.Sprintf("P%d %-11s score %-7d level %-2d lines %d",
				snap.Controller+1, snap.Screen, snap.Score, snap.Level, snap.Lines)
			drawString(r.Screen, 0, y, line)
			y++
		}
	}
	drawString(r.Screen, 0, y+1, "P1 WASD Q/E R Tab   P2 arrows K/L P Enter   Esc quits")

	r.Screen.Show()
}

func drawString(s tcell.Screen, x, y int, text string) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, statusStyle)
		x++
	}
}
