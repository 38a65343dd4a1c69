package tetris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/dotris/tetris"
)

func fillRow(board *tetris.Board, y int, skip ...int) {
	skipped := make(map[int]bool)
	for _, x := range skip {
		skipped[x] = true
	}
	for x := 0; x < tetris.BoardWidth; x++ {
		if !skipped[x] {
			board.Place(x, y)
		}
	}
}

func TestBoardPlace(t *testing.T) {
	board := tetris.NewBoard()

	assert.True(t, board.Place(3, 4))
	assert.False(t, board.Place(3, 4), "duplicate cell")
	assert.False(t, board.Place(-1, 4))
	assert.False(t, board.Place(10, 4))
	assert.False(t, board.Place(3, 27))
	assert.Equal(t, 1, board.Len())
}

func TestBoardBlocksIsCopy(t *testing.T) {
	board := tetris.NewBoard()
	board.Place(1, 1)

	blocks := board.Blocks()
	blocks[0].X = 9

	assert.True(t, board.Occupied(1, 1))
	assert.False(t, board.Occupied(9, 1))
}

func TestClearLinesNone(t *testing.T) {
	board := tetris.NewBoard()
	fillRow(board, 26, 4)

	assert.Empty(t, board.ClearLines())
	assert.Equal(t, 9, board.Len())
}

func TestClearLinesRemapsOnce(t *testing.T) {
	board := tetris.NewBoard()
	fillRow(board, 5)
	fillRow(board, 7)
	board.Place(0, 3) // above both cleared rows
	board.Place(1, 6) // between them
	board.Place(2, 8) // beneath both

	cleared := board.ClearLines()

	require.Equal(t, []int{5, 7}, cleared)
	assert.Equal(t, 3, board.Len())
	assert.ElementsMatch(t, []tetris.Block{{X: 0, Y: 5}, {X: 1, Y: 7}, {X: 2, Y: 8}}, board.Blocks())
	assert.True(t, board.Occupied(0, 5))
	assert.False(t, board.Occupied(0, 3))
	assert.Equal(t, 1, board.RowCount(5))
	assert.Equal(t, 1, board.RowCount(7))
}

func TestClearLinesAdjacentRows(t *testing.T) {
	board := tetris.NewBoard()
	for y := 23; y <= 26; y++ {
		fillRow(board, y)
	}
	board.Place(4, 22)

	cleared := board.ClearLines()

	assert.Equal(t, []int{23, 24, 25, 26}, cleared)
	assert.Equal(t, []tetris.Block{{X: 4, Y: 26}}, board.Blocks())
}

func TestBoardReset(t *testing.T) {
	board := tetris.NewBoard()
	fillRow(board, 26)
	board.Reset()

	assert.Zero(t, board.Len())
	assert.False(t, board.Occupied(0, 26))
}
