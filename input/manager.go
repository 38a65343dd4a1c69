// Package input turns raw, continuously sampled controller state into per-tick
// snapshots. Raw events accumulate in a live buffer; once per tick Advance freezes
// them into the buffer every consumer reads during that tick.
package input

import (
	"log"
	"slices"
	"sync"

	"github.com/plus3/dotris/engine"
)

// State is the debounced view of one controller for one tick.
type State struct {
	Held    []Button
	Clicked []Button
}

// IsHeld reports whether b was down at any poll during the last tick.
func (s State) IsHeld(b Button) bool {
	return slices.Contains(s.Held, b)
}

// IsClicked reports whether b went down during the last tick.
func (s State) IsClicked(b Button) bool {
	return slices.Contains(s.Clicked, b)
}

func (s State) clone() State {
	return State{
		Held:    slices.Clone(s.Held),
		Clicked: slices.Clone(s.Clicked),
	}
}

// Manager is the double-buffered debouncer for every controller index seen so far.
// Record may be called from any goroutine; Advance, StateFor and the listeners run
// on the tick goroutine.
type Manager struct {
	mu      sync.Mutex
	live    []State
	pending []Event

	old          []State
	onConnect    []func(controller int)
	onDisconnect []func(controller int)
}

// NewManager returns an empty debouncer.
func NewManager() *Manager {
	return &Manager{}
}

// OnConnect registers a listener for controller connections.
func (m *Manager) OnConnect(fn func(controller int)) {
	m.onConnect = append(m.onConnect, fn)
}

// OnDisconnect registers a listener for controller disconnections.
func (m *Manager) OnDisconnect(fn func(controller int)) {
	m.onDisconnect = append(m.onDisconnect, fn)
}

// Record adds a raw event to the live buffer.
func (m *Manager) Record(ev Event) {
	if ev.Controller < 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch ev.Kind {
	case EventConnected, EventDisconnected:
		m.pending = append(m.pending, ev)
		return
	}

	for len(m.live) <= ev.Controller {
		m.live = append(m.live, State{})
	}

	state := &m.live[ev.Controller]
	if !slices.Contains(state.Held, ev.Button) {
		state.Held = append(state.Held, ev.Button)
	}
	if ev.Clicked && !slices.Contains(state.Clicked, ev.Button) {
		state.Clicked = append(state.Clicked, ev.Button)
	}
}

// Advance freezes the live buffer into the readable one and clears it, then
// delivers connection changes recorded since the previous call.
func (m *Manager) Advance() {
	m.mu.Lock()
	for len(m.old) < len(m.live) {
		m.old = append(m.old, State{})
	}
	for i := range m.live {
		m.old[i] = m.live[i].clone()
		m.live[i].Held = m.live[i].Held[:0]
		m.live[i].Clicked = m.live[i].Clicked[:0]
	}
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()

	for _, ev := range pending {
		switch ev.Kind {
		case EventConnected:
			log.Printf("[INPUT] Controller %d connected", ev.Controller)
			for _, fn := range m.onConnect {
				fn(ev.Controller)
			}
		case EventDisconnected:
			log.Printf("[INPUT] Controller %d disconnected", ev.Controller)
			for _, fn := range m.onDisconnect {
				fn(ev.Controller)
			}
		}
	}
}

// StateFor returns a copy of the frozen state of a controller, or an empty state for
// an index that has never produced input. Callers may modify the copy freely.
func (m *Manager) StateFor(controller int) State {
	if controller < 0 || controller >= len(m.old) {
		return State{}
	}
	return m.old[controller].clone()
}

// Controllers returns how many controller slots are tracked. Slots are never
// removed, even after a disconnect.
func (m *Manager) Controllers() int {
	return len(m.old)
}

// Execute advances the buffers once per tick.
func (m *Manager) Execute(frame *engine.UpdateFrame) {
	m.Advance()
}

// PollSystem samples a Poller into a Sink at the start of every tick.
type PollSystem struct {
	Poller Poller
	Sink   Sink
}

func (s *PollSystem) Execute(frame *engine.UpdateFrame) {
	s.Poller.Poll(s.Sink)
}
