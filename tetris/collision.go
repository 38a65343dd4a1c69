package tetris

// CanMove reports whether piece may be shifted by (dx, dy) without leaving the board
// or overlapping a placed block.
func CanMove(dx, dy int, piece Piece, board *Board) bool {
	return fits(piece.cells(dx, dy, piece.Rotation), board)
}

// CanRotate reports whether piece may turn by drot steps in place. There are no
// wall kicks: a rotation that does not fit at the current position is rejected.
func CanRotate(drot int, piece Piece, board *Board) bool {
	return fits(piece.cells(0, 0, piece.Rotation+drot), board)
}

func fits(cells [4]Block, board *Board) bool {
	for _, c := range cells {
		if !InBounds(c.X, c.Y) {
			return false
		}
		if board.Occupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// LockPiece freezes the piece's cells into the board.
func LockPiece(piece Piece, board *Board) {
	for _, c := range piece.Cells() {
		board.Place(c.X, c.Y)
	}
}
