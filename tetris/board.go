package tetris

import (
	"github.com/kamstrup/intmap"
)

const (
	BoardWidth  = 10
	BoardHeight = 27
)

// Block is one occupied board cell.
type Block struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Board is the set of placed blocks of one game. Blocks keep their insertion order;
// an occupancy index answers collision lookups.
type Board struct {
	blocks   []Block
	occupied *intmap.Map[int, struct{}]
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{
		occupied: intmap.New[int, struct{}](BoardWidth * BoardHeight),
	}
}

func cellKey(x, y int) int {
	return y*BoardWidth + x
}

// InBounds reports whether (x, y) lies inside the walls and above the floor.
// There is no ceiling check.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardWidth && y < BoardHeight
}

// Occupied reports whether a placed block sits at (x, y).
func (b *Board) Occupied(x, y int) bool {
	if !InBounds(x, y) || y < 0 {
		return false
	}
	return b.occupied.Has(cellKey(x, y))
}

// Place adds a block. Blocks outside the board or on occupied cells are ignored.
func (b *Board) Place(x, y int) bool {
	if !InBounds(x, y) || y < 0 || b.Occupied(x, y) {
		return false
	}
	b.blocks = append(b.blocks, Block{X: x, Y: y})
	b.occupied.Put(cellKey(x, y), struct{}{})
	return true
}

// Len returns the number of placed blocks.
func (b *Board) Len() int {
	return len(b.blocks)
}

// Blocks returns a copy of the placed blocks.
func (b *Board) Blocks() []Block {
	out := make([]Block, len(b.blocks))
	copy(out, b.blocks)
	return out
}

// RowCount returns how many blocks sit on row y.
func (b *Board) RowCount(y int) int {
	n := 0
	for x := 0; x < BoardWidth; x++ {
		if b.Occupied(x, y) {
			n++
		}
	}
	return n
}

// Reset removes every block.
func (b *Board) Reset() {
	b.blocks = b.blocks[:0]
	b.occupied.Clear()
}

// ClearLines removes every full row and drops the blocks above them. All full rows
// are collected before anything moves, and each remaining block moves once by the
// number of cleared rows beneath it. It returns the cleared rows in ascending order.
func (b *Board) ClearLines() []int {
	var full []int
	for y := 0; y < BoardHeight; y++ {
		if b.RowCount(y) == BoardWidth {
			full = append(full, y)
		}
	}
	if len(full) == 0 {
		return nil
	}

	remaining := b.blocks[:0]
	for _, block := range b.blocks {
		below := 0
		cleared := false
		for _, y := range full {
			if y == block.Y {
				cleared = true
				break
			}
			if y > block.Y {
				below++
			}
		}
		if cleared {
			continue
		}
		remaining = append(remaining, Block{X: block.X, Y: block.Y + below})
	}

	b.blocks = remaining
	b.occupied.Clear()
	for _, block := range b.blocks {
		b.occupied.Put(cellKey(block.X, block.Y), struct{}{})
	}
	return full
}
