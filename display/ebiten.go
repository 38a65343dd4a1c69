package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	Background = color.RGBA{0x10, 0x10, 0x10, 0xff}
	DotOff     = color.RGBA{0x28, 0x28, 0x28, 0xff}
	DotOn      = color.RGBA{0xf0, 0xe6, 0x40, 0xff}
)

// Renderer draws frames as round dots, the way the panels look.
type Renderer struct {
	Scale int
}

func NewRenderer(scale int) *Renderer {
	if scale < 1 {
		scale = 1
	}
	return &Renderer{Scale: scale}
}

// Size returns the screen size needed for a frame.
func (r *Renderer) Size(f *Frame) (int, int) {
	return f.Width * r.Scale, f.Height * r.Scale
}

func (r *Renderer) Draw(screen *ebiten.Image, f *Frame) {
	screen.Fill(Background)
	s := float32(r.Scale)
	radius := s * 0.42
	for y := range f.Height {
		for x := range f.Width {
			clr := DotOff
			if f.At(x, y) {
				clr = DotOn
			}
			cx := float32(x)*s + s/2
			cy := float32(y)*s + s/2
			vector.DrawFilledCircle(screen, cx, cy, radius, clr, true)
		}
	}
}
