package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/dotris/engine"
	"github.com/plus3/dotris/highscore"
	"github.com/plus3/dotris/input"
	"github.com/plus3/dotris/session"
	"github.com/plus3/dotris/tetris"
)

type rig struct {
	input     *input.Manager
	sessions  *session.Manager
	scheduler *engine.Scheduler
}

func newRig() *rig {
	in := input.NewManager()
	sessions := session.NewManager(in, tetris.NewRandomizer(1), highscore.NewTable(nil), session.DefaultMapping(), 0)

	scheduler := engine.NewScheduler()
	scheduler.Register(in)
	scheduler.Register(sessions)
	return &rig{input: in, sessions: sessions, scheduler: scheduler}
}

func (r *rig) tick() {
	r.scheduler.Once(1.0 / 60.0)
}

func TestManagerLifecycle(t *testing.T) {
	t.Run("connect events create sessions in controller order", func(t *testing.T) {
		r := newRig()
		r.input.Record(input.Connected(3))
		r.input.Record(input.Connected(1))
		r.tick()

		assert.Equal(t, []int{1, 3}, r.sessions.Controllers())
		snaps := r.sessions.Snapshots()
		require.Len(t, snaps, 2)
		assert.Equal(t, 1, snaps[0].Controller)
		assert.Equal(t, 3, snaps[1].Controller)
	})

	t.Run("capped at two sessions", func(t *testing.T) {
		r := newRig()
		for c := range 3 {
			r.input.Record(input.Connected(c))
		}
		r.tick()

		assert.Equal(t, session.MaxSessions, r.sessions.Len())
		assert.Equal(t, []int{0, 1}, r.sessions.Controllers())
		assert.False(t, r.sessions.Connect(2))
		assert.False(t, r.sessions.Connect(0), "duplicate connect")
	})

	t.Run("disconnect frees the seat", func(t *testing.T) {
		r := newRig()
		r.input.Record(input.Connected(0))
		r.input.Record(input.Connected(1))
		r.tick()

		r.input.Record(input.Disconnected(0))
		r.tick()
		assert.Equal(t, []int{1}, r.sessions.Controllers())
		require.Len(t, r.sessions.Snapshots(), 1)

		r.input.Record(input.Connected(2))
		r.tick()
		assert.Equal(t, []int{1, 2}, r.sessions.Controllers())
	})

	t.Run("disconnect of unknown controller is a no-op", func(t *testing.T) {
		r := newRig()
		r.sessions.Disconnect(9)
		assert.Equal(t, 0, r.sessions.Len())
	})

	t.Run("quit from the pause menu removes the session after the tick", func(t *testing.T) {
		r := newRig()
		r.input.Record(input.Connected(0))
		r.tick()

		press := func(b input.Button) {
			r.input.Record(input.Press(0, b, true))
			r.tick()
			r.tick()
		}
		press(input.ButtonStart)
		a, ok := r.sessions.Session(0)
		require.True(t, ok)
		require.Equal(t, session.ScreenPaused, a.Screen())

		press(input.ButtonDPadDown)
		r.input.Record(input.Press(0, input.ButtonA, true))
		r.tick()

		assert.Len(t, r.sessions.Snapshots(), 1, "the quitting session still reports its last tick")
		assert.Equal(t, 0, r.sessions.Len())
		_, ok = r.sessions.Session(0)
		assert.False(t, ok)
	})
}

func TestManagerRoutesInput(t *testing.T) {
	r := newRig()
	r.input.Record(input.Connected(0))
	r.input.Record(input.Connected(1))
	r.tick()

	a0, _ := r.sessions.Session(0)
	a1, _ := r.sessions.Session(1)

	r.input.Record(input.Press(1, input.ButtonDPadUp, true))
	r.tick()

	assert.Equal(t, 0, a0.Game().Board().Len())
	assert.Equal(t, 4, a1.Game().Board().Len())
}

func TestManagerSnapshotsAreStable(t *testing.T) {
	r := newRig()
	r.input.Record(input.Connected(0))
	r.tick()

	first := r.sessions.Snapshots()
	score := first[0].Score
	blocks := len(first[0].Blocks)

	r.input.Record(input.Press(0, input.ButtonDPadUp, true))
	r.tick()

	assert.Equal(t, score, first[0].Score)
	assert.Len(t, first[0].Blocks, blocks)
	assert.NotEqual(t, len(first[0].Blocks), len(r.sessions.Snapshots()[0].Blocks))
}
