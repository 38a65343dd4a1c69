package session

import (
	"log"
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/plus3/dotris/engine"
	"github.com/plus3/dotris/highscore"
	"github.com/plus3/dotris/input"
	"github.com/plus3/dotris/tetris"
)

// MaxSessions is the default number of simultaneous players.
const MaxSessions = 2

// Manager owns the sessions keyed by controller index. It is an engine.System and
// must run after the input.Manager in the same scheduler.
type Manager struct {
	input   *input.Manager
	rnd     *tetris.Randomizer
	scores  *highscore.Table
	mapping Mapping
	max     int

	sessions  *intmap.Map[int, *Adapter]
	order     []int
	snapshots []Snapshot
}

// NewManager creates a manager and subscribes it to in's connection events. A
// maxSessions of zero or less means MaxSessions.
func NewManager(in *input.Manager, rnd *tetris.Randomizer, scores *highscore.Table, mapping Mapping, maxSessions int) *Manager {
	if maxSessions <= 0 {
		maxSessions = MaxSessions
	}
	m := &Manager{
		input:    in,
		rnd:      rnd,
		scores:   scores,
		mapping:  mapping,
		max:      maxSessions,
		sessions: intmap.New[int, *Adapter](maxSessions),
	}
	if in != nil {
		in.OnConnect(func(controller int) { m.Connect(controller) })
		in.OnDisconnect(m.Disconnect)
	}
	return m
}

// Connect starts a session for controller. It returns false when the controller
// already has one or every seat is taken.
func (m *Manager) Connect(controller int) bool {
	if m.sessions.Has(controller) {
		return false
	}
	if m.sessions.Len() >= m.max {
		log.Printf("[SESSION] Ignoring controller %d: %d of %d seats taken", controller, m.sessions.Len(), m.max)
		return false
	}

	m.sessions.Put(controller, NewAdapter(controller, m.rnd, m.scores, m.mapping))
	idx, _ := slices.BinarySearch(m.order, controller)
	m.order = slices.Insert(m.order, idx, controller)
	log.Printf("[SESSION] Controller %d joined", controller)
	return true
}

// Disconnect ends the controller's session, if any.
func (m *Manager) Disconnect(controller int) {
	a, ok := m.sessions.Get(controller)
	if !ok {
		return
	}
	a.Close()
	m.sessions.Del(controller)
	if idx, found := slices.BinarySearch(m.order, controller); found {
		m.order = slices.Delete(m.order, idx, idx+1)
	}
	log.Printf("[SESSION] Controller %d left", controller)
}

// Session returns the controller's session.
func (m *Manager) Session(controller int) (*Adapter, bool) {
	return m.sessions.Get(controller)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}

// Controllers returns the controllers with a session, in ascending order.
func (m *Manager) Controllers() []int {
	return slices.Clone(m.order)
}

// Snapshots returns the snapshots built by the last tick, ordered by controller. The
// slice is replaced every tick and must not be modified.
func (m *Manager) Snapshots() []Snapshot {
	return m.snapshots
}

// Execute ticks every session in controller order. Sessions that quit are removed once
// the tick's systems have all run.
func (m *Manager) Execute(frame *engine.UpdateFrame) {
	snapshots := make([]Snapshot, 0, len(m.order))
	for _, controller := range m.order {
		a, _ := m.sessions.Get(controller)

		var state input.State
		if m.input != nil {
			state = m.input.StateFor(controller)
		}
		snapshots = append(snapshots, a.Tick(state))

		if a.Quit() {
			frame.Commands.Defer(func() { m.Disconnect(controller) })
		}
	}
	m.snapshots = snapshots
}
