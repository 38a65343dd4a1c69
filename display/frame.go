// Package display composes session snapshots into a monochrome dot frame the size of
// the flip-dot panels, and draws such frames with ebiten.
package display

import "strings"

const (
	Width  = 84
	Height = 28
)

// Frame is a grid of dots that are either set or clear.
type Frame struct {
	Width, Height int
	dots          []bool
}

func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, dots: make([]bool, width*height)}
}

func (f *Frame) inside(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// Set turns a dot on. Dots outside the frame are ignored.
func (f *Frame) Set(x, y int) {
	if f.inside(x, y) {
		f.dots[y*f.Width+x] = true
	}
}

// Unset turns a dot off.
func (f *Frame) Unset(x, y int) {
	if f.inside(x, y) {
		f.dots[y*f.Width+x] = false
	}
}

func (f *Frame) At(x, y int) bool {
	return f.inside(x, y) && f.dots[y*f.Width+x]
}

func (f *Frame) Clear() {
	clear(f.dots)
}

func (f *Frame) FillRect(x, y, w, h int) {
	for dy := range h {
		for dx := range w {
			f.Set(x+dx, y+dy)
		}
	}
}

func (f *Frame) ClearRect(x, y, w, h int) {
	for dy := range h {
		for dx := range w {
			f.Unset(x+dx, y+dy)
		}
	}
}

// CopyFrom overwrites f with src. Both frames must have the same size.
func (f *Frame) CopyFrom(src *Frame) {
	copy(f.dots, src.dots)
}

// Count returns how many dots are set.
func (f *Frame) Count() int {
	n := 0
	for _, d := range f.dots {
		if d {
			n++
		}
	}
	return n
}

// String renders the frame as rows of '#' and '.'.
func (f *Frame) String() string {
	var b strings.Builder
	b.Grow((f.Width + 1) * f.Height)
	for y := range f.Height {
		for x := range f.Width {
			if f.At(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Rows returns the frame as one '#'/'.' string per row.
func (f *Frame) Rows() []string {
	return strings.Split(strings.TrimSuffix(f.String(), "\n"), "\n")
}
