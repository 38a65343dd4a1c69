package main

import (
	"math/rand/v2"

	"github.com/plus3/dotris/engine"
	"github.com/plus3/dotris/input"
	"github.com/plus3/dotris/session"
)

// randomButtons are the buttons the random players press. START is left out so that
// nobody pauses and quits.
var randomButtons = []input.Button{
	input.ButtonDPadLeft,
	input.ButtonDPadRight,
	input.ButtonDPadUp,
	input.ButtonDPadDown,
	input.ButtonA,
	input.ButtonB,
	input.ButtonY,
}

// RandomPoller plays like a child mashing buttons: each poll, every player holds a
// random button with the given chance.
type RandomPoller struct {
	rng       *rand.Rand
	players   int
	chance    float64
	connected bool
}

func NewRandomPoller(seed uint64, players int, chance float64) *RandomPoller {
	return &RandomPoller{
		rng:     rand.New(rand.NewPCG(seed, seed+1)),
		players: players,
		chance:  chance,
	}
}

func (p *RandomPoller) Poll(sink input.Sink) {
	if !p.connected {
		for c := range p.players {
			sink.Record(input.Connected(c))
		}
		p.connected = true
	}
	for c := range p.players {
		if p.rng.Float64() >= p.chance {
			continue
		}
		b := randomButtons[p.rng.IntN(len(randomButtons))]
		sink.Record(input.Press(c, b, true))
	}
}

// Tally counts game events across all sessions.
type Tally struct {
	Source interface{ Snapshots() []session.Snapshot }

	Lines     int64
	Tetrises  int64
	TopOuts   int64
	BestScore int
}

func (t *Tally) Execute(frame *engine.UpdateFrame) {
	for _, snap := range t.Source.Snapshots() {
		t.Lines += int64(snap.LinesCleared)
		if snap.LinesCleared >= 4 {
			t.Tetrises++
		}
		if snap.ToppedOut {
			t.TopOuts++
		}
		if snap.Score > t.BestScore {
			t.BestScore = snap.Score
		}
	}
}
