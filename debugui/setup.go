package debugui

import (
	"github.com/plus3/dotris/engine"
	"github.com/plus3/dotris/input"
	"github.com/plus3/dotris/session"
)

// New returns a System with the standard windows.
func New(scheduler *engine.Scheduler, sessions *session.Manager, in *input.Manager) *System {
	s := &System{}
	s.Add(NewPerformanceStats(scheduler, 120))
	s.Add(NewSessionViewer(sessions))
	s.Add(NewInputViewer(in))
	return s
}
