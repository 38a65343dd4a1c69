package engine

import "time"

// Pacer decides when the next fixed tick is due. It fires only once the wall-clock
// time since the last tick reaches the interval and carries the remainder forward,
// so a late tick does not push every later tick back.
type Pacer struct {
	interval time.Duration
	last     time.Time
}

// NewPacer starts pacing from start.
func NewPacer(interval time.Duration, start time.Time) *Pacer {
	return &Pacer{interval: interval, last: start}
}

// Interval returns the target tick interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Due reports whether a tick should run at now and returns the elapsed time since
// the previous tick when it does.
func (p *Pacer) Due(now time.Time) (time.Duration, bool) {
	delta := now.Sub(p.last)
	if delta < p.interval {
		return 0, false
	}
	p.last = now.Add(-(delta % p.interval))
	return delta, true
}

// Until returns how long to wait from now before the next tick is due.
func (p *Pacer) Until(now time.Time) time.Duration {
	wait := p.interval - now.Sub(p.last)
	if wait < 0 {
		return 0
	}
	return wait
}
