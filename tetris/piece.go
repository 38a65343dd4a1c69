// Package tetris implements the falling-block simulation for a single player: the piece
// catalog, the bag randomizer, collision checks against the placed blocks and the
// tick-driven drop/lock/spawn state machine.
package tetris

import "fmt"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindL Kind = iota
	KindI
	KindO
	KindS
	KindZ
	KindT
	KindJ
)

// KindCount is the number of distinct tetrominoes.
const KindCount = 7

// RotationCount is the number of rotation states per kind.
const RotationCount = 4

var kindNames = [KindCount]string{"L", "I", "O", "S", "Z", "T", "J"}

func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return kindNames[k]
}

// MarshalText encodes a kind as its letter.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind letter.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, n := range kindNames {
		if n == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown piece kind %q", text)
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < KindCount
}

// Offset is a cell position relative to a piece origin.
type Offset struct {
	X, Y int
}

// Shape is the four cells a piece occupies in one rotation state.
type Shape [4]Offset

var shapes = [KindCount][RotationCount]Shape{
	KindL: {
		{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	KindI: {
		{{-1, 1}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		{{-1, 1}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	KindO: {
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	KindS: {
		{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {2, 1}, {1, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {2, 1}, {1, 1}, {1, 2}},
	},
	KindT: {
		{{0, 1}, {1, 1}, {1, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
	},
	KindJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {0, 2}},
	},
}

// ShapeFor returns the cells of kind in the given rotation state.
// Rotation is reduced modulo 4, so any integer is accepted.
func ShapeFor(kind Kind, rotation int) Shape {
	return shapes[kind][normalizeRotation(rotation)]
}

func normalizeRotation(rotation int) int {
	return ((rotation % RotationCount) + RotationCount) % RotationCount
}

// Piece is a movable tetromino on the board.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
}

// cells returns the absolute board cells of the piece shifted by (dx, dy) in the
// given rotation state.
func (p Piece) cells(dx, dy, rotation int) [4]Block {
	var out [4]Block
	for i, off := range ShapeFor(p.Kind, rotation) {
		out[i] = Block{X: p.X + off.X + dx, Y: p.Y + off.Y + dy}
	}
	return out
}

// Cells returns the absolute board cells the piece currently covers.
func (p Piece) Cells() [4]Block {
	return p.cells(0, 0, p.Rotation)
}
