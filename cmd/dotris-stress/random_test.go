package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/dotris/input"
	"github.com/plus3/dotris/session"
)

type recorder []input.Event

func (r *recorder) Record(ev input.Event) { *r = append(*r, ev) }

func TestRandomPoller(t *testing.T) {
	t.Run("connects every player once", func(t *testing.T) {
		p := NewRandomPoller(1, 3, 0)
		var rec recorder
		p.Poll(&rec)
		p.Poll(&rec)

		assert.Len(t, rec, 3)
		for i, ev := range rec {
			assert.Equal(t, input.EventConnected, ev.Kind)
			assert.Equal(t, i, ev.Controller)
		}
	})

	t.Run("never presses start", func(t *testing.T) {
		p := NewRandomPoller(7, 2, 1)
		var rec recorder
		for range 500 {
			p.Poll(&rec)
		}
		presses := 0
		for _, ev := range rec {
			if ev.Kind != input.EventPress {
				continue
			}
			presses++
			assert.NotEqual(t, input.ButtonStart, ev.Button)
		}
		assert.Equal(t, 1000, presses)
	})
}

func TestTally(t *testing.T) {
	snaps := []session.Snapshot{
		{LinesCleared: 4, Score: 1200},
		{LinesCleared: 1, ToppedOut: true, Score: 40},
	}
	tally := &Tally{Source: fixedSnapshots(snaps)}
	tally.Execute(nil)
	tally.Execute(nil)

	assert.Equal(t, int64(10), tally.Lines)
	assert.Equal(t, int64(2), tally.Tetrises)
	assert.Equal(t, int64(2), tally.TopOuts)
	assert.Equal(t, 1200, tally.BestScore)
}

type fixedSnapshots []session.Snapshot

func (f fixedSnapshots) Snapshots() []session.Snapshot { return f }
