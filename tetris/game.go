package tetris

// Spawn is where every new piece enters the board.
var Spawn = Block{X: 4, Y: 0}

// DropMode selects the gravity interval for a tick.
type DropMode int

const (
	DropNormal DropMode = iota
	DropSoft
	DropHard
)

var dropIntervalBase = [...]int{
	DropNormal: 20,
	DropSoft:   3,
	DropHard:   0,
}

// maxSpeedLevels caps how many levels keep shortening the drop interval.
const maxSpeedLevels = 20

// DropInterval returns how many ticks a piece waits between drops. Hard drops return
// 0, meaning the piece falls until it locks within a single tick.
func DropInterval(level int, mode DropMode) int {
	base := dropIntervalBase[mode]
	if base == 0 {
		return 0
	}
	speedUp := min(level-1, maxSpeedLevels)
	return max(1, base-speedUp/2)
}

var lineScores = [...]int{0, 40, 100, 300, 1200}

// LineScore returns the points for clearing n rows at once on the given level.
func LineScore(n, level int) int {
	return lineScores[min(n, len(lineScores)-1)] * level
}

// TickResult describes what happened during one Tick call.
type TickResult struct {
	Locked    bool
	Cleared   int
	ToppedOut bool
}

// Game is the simulation state of one player.
type Game struct {
	GameOver bool

	rnd     *Randomizer
	bagID   int
	ticks   int
	board   *Board
	current Piece
	next    Piece
	score   int
	level   int
	lines   int
}

// NewGame starts a game drawing pieces from its own bag in rnd.
func NewGame(rnd *Randomizer) *Game {
	g := &Game{
		rnd:   rnd,
		bagID: rnd.NewBag(),
		board: NewBoard(),
		level: 1,
	}
	g.current = g.newPiece()
	g.next = g.newPiece()
	return g
}

// Close returns the game's bag to the randomizer.
func (g *Game) Close() {
	g.rnd.ReleaseBag(g.bagID)
}

func (g *Game) Current() Piece { return g.current }
func (g *Game) Next() Piece    { return g.next }
func (g *Game) Board() *Board  { return g.board }
func (g *Game) Score() int     { return g.score }
func (g *Game) Level() int     { return g.level }
func (g *Game) Lines() int     { return g.lines }

// Tick advances the game by one step. moveX and rotate are single-step commands in
// {-1, 0, 1}; softDrop shortens the drop interval and hardDrop drops the piece all
// the way down and locks it. A hard drop leaves the tick counter alone, so the next
// piece inherits the ticks already counted.
func (g *Game) Tick(moveX, rotate int, softDrop, hardDrop bool) TickResult {
	if g.GameOver {
		return TickResult{}
	}

	g.ticks++

	if moveX != 0 && CanMove(moveX, 0, g.current, g.board) {
		g.current.X += moveX
	}
	if rotate != 0 && CanRotate(rotate, g.current, g.board) {
		g.current.Rotation = normalizeRotation(g.current.Rotation + rotate)
	}

	mode := DropNormal
	if hardDrop {
		mode = DropHard
	} else if softDrop {
		mode = DropSoft
	}

	interval := DropInterval(g.level, mode)
	if interval == 0 {
		for {
			if res, dropped := g.drop(); !dropped {
				return res
			}
		}
	}

	if g.ticks <= interval {
		return TickResult{}
	}

	res, _ := g.drop()
	g.ticks = 0
	return res
}

// drop moves the piece down one row. When it cannot fall it is locked, full rows
// are cleared and the next piece spawns; dropped is false in that case.
func (g *Game) drop() (res TickResult, dropped bool) {
	if CanMove(0, 1, g.current, g.board) {
		g.current.Y++
		return res, true
	}

	LockPiece(g.current, g.board)
	res.Locked = true
	res.Cleared = g.clearLines()
	g.spawn()

	if !CanMove(0, 0, g.current, g.board) {
		g.GameOver = true
		res.ToppedOut = true
	}
	return res, false
}

func (g *Game) clearLines() int {
	n := len(g.board.ClearLines())
	if n == 0 {
		return 0
	}
	g.score += LineScore(n, g.level)
	g.lines += n
	g.level = g.lines/10 + 1
	return n
}

func (g *Game) spawn() {
	g.current = g.next
	g.current.X, g.current.Y = Spawn.X, Spawn.Y
	g.next = g.newPiece()
}

func (g *Game) newPiece() Piece {
	return Piece{
		Kind:     g.rnd.NextKind(g.bagID),
		Rotation: g.rnd.NextRotation(),
		X:        Spawn.X,
		Y:        Spawn.Y,
	}
}
